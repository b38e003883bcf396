package extract

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Cut sets used when trimming extracted text.
const (
	// listCutset trims anchor text in the list extractors.
	listCutset = " \n\t"

	// detailCutset trims detail block headings and values.
	detailCutset = " \r\n\t"
)

// nextInDocument returns the node following n in document (pre-)order,
// descending into n's children first. Returns nil at the end of the tree.
func nextInDocument(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// findNext returns the first element named tag that follows n in document
// order, starting with n's own descendants.
func findNext(n *html.Node, tag string) *html.Node {
	for c := nextInDocument(n); c != nil; c = nextInDocument(c) {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}

// secondNextSibling returns the sibling two positions after n, counting text
// and element nodes alike, or nil.
func secondNextSibling(n *html.Node) *html.Node {
	if n.NextSibling == nil {
		return nil
	}
	return n.NextSibling.NextSibling
}

// textContent returns the concatenated text of n and its descendants.
// For a text node that is the node's own data.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// isNumeric reports whether s is non-empty and every rune is a numeric
// character. Whitespace makes s non-numeric, so callers must not trim first.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
