package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("single column", func(t *testing.T) {
		t.Parallel()

		table := NewTable([]string{"year"}, []string{"2019", "2020"})
		want := [][]string{{"2019"}, {"2020"}}
		if diff := cmp.Diff(want, table.Rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unequal columns are padded not truncated", func(t *testing.T) {
		t.Parallel()

		table := NewTable([]string{"year", "model"},
			[]string{"2020", "2019", "2018"},
			[]string{"Camry"},
		)
		want := [][]string{
			{"2020", "Camry"},
			{"2019", ""},
			{"2018", ""},
		}
		if diff := cmp.Diff(want, table.Rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("longer second column", func(t *testing.T) {
		t.Parallel()

		table := NewTable([]string{"key", "value"},
			[]string{"price"},
			[]string{"$20,000", "extra"},
		)
		want := [][]string{
			{"price", "$20,000"},
			{"", "extra"},
		}
		if diff := cmp.Diff(want, table.Rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no columns gives header-only table", func(t *testing.T) {
		t.Parallel()

		table := NewTable([]string{"model"}, nil)
		if !table.IsEmpty() {
			t.Errorf("expected empty table, got %d rows", table.Len())
		}
		if diff := cmp.Diff([]string{"model"}, table.Header); diff != "" {
			t.Errorf("header mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("extra columns are ignored", func(t *testing.T) {
		t.Parallel()

		table := NewTable([]string{"year"}, []string{"2020"}, []string{"a", "b", "c"})
		if table.Len() != 1 {
			t.Errorf("expected 1 row, got %d", table.Len())
		}
	})

	t.Run("nil table length", func(t *testing.T) {
		t.Parallel()

		var table *Table
		if table.Len() != 0 {
			t.Errorf("expected 0, got %d", table.Len())
		}
	})
}
