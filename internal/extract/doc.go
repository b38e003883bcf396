// Package extract pulls car facts out of carspecs.us pages.
//
// # Extractors
//
// There is one extractor per lookup mode:
//
//   - Years: years a make/model was produced (list items linking to /{make}/{model})
//   - Models: models a make produced in a year (list items linking to /cars/{year}/{make})
//   - YearsAndModels: both lists for a make, filtered independently
//   - Details: price, mileage, and the key/value detail blocks of one car
//
// Each extractor returns parallel string slices. Turning those slices into a
// table and deciding what to log is left to the caller (see package lookup).
//
// # Missing structure
//
// The extractors assume a particular page layout. When an element they must
// dereference is absent (a list item without an anchor, an anchor without
// href, a detail block without a heading) they return a *MissingElementError
// instead of guessing. A nil document is treated as an empty page.
//
// Selectors go through goquery. Positional relationships (sibling text
// nodes, the next heading in document order) are walked on the underlying
// golang.org/x/net/html nodes.
package extract
