package extract

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetails(t *testing.T) {
	t.Parallel()

	t.Run("price mileage and detail blocks", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t, `<html><body>
			<div class="main-car-details"><span> $23,650 </span><br>
				30/38 mpg
			</div>
			<div class="car-details">
				<div class="pure-u-1 pure-u-md-1-2">
					<h4>Engine</h4>
					1.8L I4
				</div>
				<div class="pure-u-1 pure-u-md-1-2"><h4> Horsepower </h4>139 hp</div>
			</div>
		</body></html>`)

		keys, values, err := Details(doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantKeys := []string{"price", "mileage", "Engine", "Horsepower"}
		wantValues := []string{"$23,650", "30/38 mpg", "1.8L I4", "139 hp"}
		if diff := cmp.Diff(wantKeys, keys); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(wantValues, values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("price without qualifying sibling has no mileage", func(t *testing.T) {
		t.Parallel()

		// The node two siblings after the span is an element, not text,
		// and the block text must not be used as a fallback.
		doc := parseFixture(t, `<div class="main-car-details"><span>$9,999</span> used <b>12,000 miles</b></div>`)

		keys, values, err := Details(doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"price"}, keys); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"$9,999"}, values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("span as last child has price only", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t, `<div class="main-car-details"><span>$1</span></div>`)

		keys, _, err := Details(doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"price"}, keys); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("summary without span is mileage", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t, `<div class="main-car-details">
			25 city / 33 hwy
		</div>`)

		keys, values, err := Details(doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"mileage"}, keys); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"25 city / 33 hwy"}, values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("element value after heading uses its text", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t, `<div class="car-details"><div class="pure-u-1 pure-u-md-1-2"><h4>Drive</h4><span> FWD </span></div></div>`)

		keys, values, err := Details(doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"Drive"}, keys); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"FWD"}, values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("blocks outside the detail list are ignored", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t, `<div class="pure-u-1 pure-u-md-1-2"><h4>Ad</h4>buy now</div>`)

		keys, values, err := Details(doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(keys) != 0 || len(values) != 0 {
			t.Errorf("expected no fields, got %v / %v", keys, values)
		}
	})

	t.Run("page without known blocks has no fields", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t, `<html><body><p>Page not found</p></body></html>`)

		keys, values, err := Details(doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(keys) != 0 || len(values) != 0 {
			t.Errorf("expected no fields, got %v / %v", keys, values)
		}
	})

	t.Run("block without heading is a missing element", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t, `<div class="car-details"><div class="pure-u-1 pure-u-md-1-2">no heading</div></div>`)

		_, _, err := Details(doc)
		if !errors.Is(err, ErrMissingElement) {
			t.Fatalf("expected ErrMissingElement, got %v", err)
		}
	})

	t.Run("heading without value is a missing element", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t, `<div class="car-details"><div class="pure-u-1 pure-u-md-1-2"><h4>Engine</h4></div></div>`)

		_, _, err := Details(doc)
		var missing *MissingElementError
		if !errors.As(err, &missing) {
			t.Fatalf("expected *MissingElementError, got %v", err)
		}
		if missing.Within != "detail block #1" {
			t.Errorf("expected 'detail block #1', got %q", missing.Within)
		}
	})

	t.Run("nil document has no fields", func(t *testing.T) {
		t.Parallel()

		keys, values, err := Details(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(keys) != 0 || len(values) != 0 {
			t.Errorf("expected no fields, got %v / %v", keys, values)
		}
	})
}
