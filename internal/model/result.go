package model

import "time"

// Result is the outcome of one lookup.
//
// Table is nil when the lookup produced no result at all (for example a
// detail page with no extractable fields). A list lookup with no matches
// still has a non-nil, header-only Table.
type Result struct {
	// Request is the lookup that produced this result.
	Request Request `json:"request"`

	// Mode is the extraction mode selected for Request.
	Mode Mode `json:"mode"`

	// URL is the page that was fetched.
	URL string `json:"url"`

	// StatusCode is the status of the existence probe.
	// Zero when the probe never got a response.
	StatusCode int `json:"status_code,omitempty"`

	// PageHash is the hex SHA3-256 of the fetched body, empty if nothing was fetched.
	PageHash string `json:"page_hash,omitempty"`

	// Table holds the extracted rows, or nil when there is no result.
	Table *Table `json:"table,omitempty"`

	// LookedUpAt is when the lookup started.
	LookedUpAt time.Time `json:"looked_up_at"`
}

// NewResult creates a Result for the request with mode and URL filled in.
func NewResult(req Request, base string) *Result {
	return &Result{
		Request:    req,
		Mode:       req.Mode(),
		URL:        req.URL(base),
		LookedUpAt: time.Now(),
	}
}

// Found reports whether the result carries a table.
func (r *Result) Found() bool {
	return r != nil && r.Table != nil
}
