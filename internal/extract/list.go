package extract

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// anchorPredicate decides whether a list item is kept, given its anchor's
// untrimmed text and href.
type anchorPredicate func(text, href string) bool

// Years returns the years listed for a make and model.
// A list item is kept when its anchor links to a path containing
// "/{make}/{model}". Values are the trimmed anchor texts in document order.
func Years(doc *goquery.Document, carMake, model string) ([]string, error) {
	fragment := "/" + carMake + "/" + model
	return filterListItems(doc, func(_, href string) bool {
		return strings.Contains(href, fragment)
	})
}

// Models returns the models listed for a make in a given year.
// A list item is kept when its anchor links to a path containing
// "/cars/{year}/{make}".
func Models(doc *goquery.Document, carMake string, year int) ([]string, error) {
	fragment := "/cars/" + strconv.Itoa(year) + "/" + carMake
	return filterListItems(doc, func(_, href string) bool {
		return strings.Contains(href, fragment)
	})
}

// YearsAndModels returns two independently filtered lists for a make:
//
//   - years: anchors whose text is purely numeric and whose href does not
//     contain "/cars/{make}"
//   - models: anchors whose href contains "/cars/{make}"
//
// The lists come from possibly different subsets of list items. Nothing
// guarantees that years[i] and models[i] belong together; callers that zip
// them do so by position only.
func YearsAndModels(doc *goquery.Document, carMake string) (years, models []string, err error) {
	fragment := "/cars/" + carMake

	years, err = filterListItems(doc, func(text, href string) bool {
		return isNumeric(text) && !strings.Contains(href, fragment)
	})
	if err != nil {
		return nil, nil, err
	}

	models, err = filterListItems(doc, func(_, href string) bool {
		return strings.Contains(href, fragment)
	})
	if err != nil {
		return nil, nil, err
	}

	return years, models, nil
}

// filterListItems walks every li element, looks up its first anchor, and
// collects the trimmed anchor text of items accepted by keep.
// Every li must contain an anchor with an href attribute.
func filterListItems(doc *goquery.Document, keep anchorPredicate) ([]string, error) {
	values := make([]string, 0)
	if doc == nil {
		return values, nil
	}

	var err error
	doc.Find("li").EachWithBreak(func(i int, li *goquery.Selection) bool {
		anchor := li.Find("a").First()
		if anchor.Length() == 0 {
			err = &MissingElementError{Element: "a", Within: "li #" + strconv.Itoa(i+1)}
			return false
		}

		href, ok := anchor.Attr("href")
		if !ok {
			err = &MissingElementError{Element: "href attribute", Within: "anchor of li #" + strconv.Itoa(i+1)}
			return false
		}

		text := anchor.Text()
		if keep(text, href) {
			values = append(values, strings.Trim(text, listCutset))
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}
