package fetch

import (
	"errors"
	"fmt"
)

// ErrInvalidProxy is returned when the proxy setting cannot be turned into a dialer.
var ErrInvalidProxy = errors.New("invalid proxy: expected host:port or socks5://[user:pass@]host:port")

// StatusError reports a non-success response to the existence probe.
type StatusError struct {
	// StatusCode is the HTTP status of the probe.
	StatusCode int

	// URL is the page that was probed.
	URL string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.URL)
}
