package extract

import (
	"errors"
	"fmt"
)

// ErrMissingElement is matched (via errors.Is) by every *MissingElementError.
var ErrMissingElement = errors.New("missing expected element")

// MissingElementError reports an element or attribute the page layout was
// expected to contain but did not.
type MissingElementError struct {
	// Element is what was missing, e.g. "a" or "href attribute".
	Element string

	// Within describes where it was expected, e.g. "li #3".
	Within string
}

// Error implements the error interface.
func (e *MissingElementError) Error() string {
	return fmt.Sprintf("missing expected element: %s in %s", e.Element, e.Within)
}

// Is makes errors.Is(err, ErrMissingElement) report true.
func (e *MissingElementError) Is(target error) bool {
	return target == ErrMissingElement
}
