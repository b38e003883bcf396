package extract

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Selectors for the detail page layout.
const (
	mainDetailsSelector = "div.main-car-details"
	detailListSelector  = "div.car-details"
	detailBlockSelector = "div.pure-u-1.pure-u-md-1-2"
	detailKeyElement    = "h4"
)

// Keys produced from the summary block.
const (
	KeyPrice   = "price"
	KeyMileage = "mileage"
)

// Details extracts the key/value facts of one car page.
//
// The summary block is read first:
//  1. If it contains a span, the span text is the price. If the node two
//     siblings after the span is a text node, it is the mileage.
//  2. Otherwise, if the block has any text, that text is the mileage.
//
// A span without a qualifying sibling yields a price and no mileage; it never
// falls back to rule 2.
//
// Then every detail block inside the detail list contributes one pair: the next
// h4 in document order is the key and the h4's next sibling is the value.
//
// keys and values always have the same length. Both are empty when the page
// has none of the expected blocks.
func Details(doc *goquery.Document) (keys, values []string, err error) {
	keys = make([]string, 0)
	values = make([]string, 0)
	if doc == nil {
		return keys, values, nil
	}

	if summary := doc.Find(mainDetailsSelector).First(); summary.Length() > 0 {
		if span := summary.Find("span").First(); span.Length() > 0 {
			keys = append(keys, KeyPrice)
			values = append(values, strings.TrimSpace(span.Text()))

			if sib := secondNextSibling(span.Nodes[0]); sib != nil && sib.Type == html.TextNode {
				keys = append(keys, KeyMileage)
				values = append(values, strings.TrimSpace(sib.Data))
			}
		} else if text := summary.Text(); text != "" {
			keys = append(keys, KeyMileage)
			values = append(values, strings.TrimSpace(text))
		}
	}

	blocks := doc.Find(detailListSelector).First().Find(detailBlockSelector)
	blocks.EachWithBreak(func(i int, block *goquery.Selection) bool {
		heading := findNext(block.Nodes[0], detailKeyElement)
		if heading == nil {
			err = &MissingElementError{Element: detailKeyElement, Within: "detail block #" + strconv.Itoa(i+1)}
			return false
		}
		if heading.NextSibling == nil {
			err = &MissingElementError{Element: "value after " + detailKeyElement, Within: "detail block #" + strconv.Itoa(i+1)}
			return false
		}

		keys = append(keys, strings.Trim(textContent(heading), detailCutset))
		values = append(values, strings.Trim(textContent(heading.NextSibling), detailCutset))
		return true
	})
	if err != nil {
		return nil, nil, err
	}

	return keys, values, nil
}
