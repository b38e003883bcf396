package model

import (
	"fmt"
	"strconv"
)

// DefaultBaseURL is the root every lookup path is appended to.
const DefaultBaseURL = "https://www.carspecs.us/cars"

// Mode identifies one of the four mutually exclusive extraction strategies.
// The mode is derived from which optional fields of a Request are present.
type Mode int

const (
	// ModeModelsAndYears lists years and models of a make (make only).
	ModeModelsAndYears Mode = iota

	// ModeModels lists the models a make produced in a year (make + year).
	ModeModels

	// ModeYears lists the years a model was produced (make + model).
	ModeYears

	// ModeDetail extracts key/value details of one car (make + year + model).
	ModeDetail
)

// String returns the short name of the mode, as stored in the history database.
func (m Mode) String() string {
	switch m {
	case ModeModelsAndYears:
		return "models+years"
	case ModeModels:
		return "models"
	case ModeYears:
		return "years"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// MarshalText encodes the mode by name so JSON output reads "detail"
// rather than 3.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Request holds the identifying parameters of a lookup.
//
// Make is required. Year is absent when zero and Model is absent when empty.
// A Request is a plain value; it fully determines both the target URL and
// the extraction mode.
type Request struct {
	// Make is the manufacturer, e.g. "toyota".
	Make string `json:"make"`

	// Model is the vehicle model, e.g. "corolla". Empty means unknown.
	Model string `json:"model,omitempty"`

	// Year is the model year, e.g. 2020. Zero means unknown.
	Year int `json:"year,omitempty"`
}

// NewRequest creates a Request. It performs no validation: make and model
// are interpolated into the URL exactly as given.
func NewRequest(carMake, model string, year int) Request {
	return Request{Make: carMake, Model: model, Year: year}
}

// HasModel reports whether the model is present.
func (r Request) HasModel() bool {
	return r.Model != ""
}

// HasYear reports whether the year is present.
func (r Request) HasYear() bool {
	return r.Year != 0
}

// Mode selects the extraction strategy.
//
//	model  year   mode
//	yes    yes    ModeDetail
//	yes    no     ModeYears
//	no     yes    ModeModels
//	no     no     ModeModelsAndYears
func (r Request) Mode() Mode {
	switch {
	case r.HasModel() && r.HasYear():
		return ModeDetail
	case r.HasModel():
		return ModeYears
	case r.HasYear():
		return ModeModels
	default:
		return ModeModelsAndYears
	}
}

// Path returns the path segments appended to the base URL for this request.
// Fields are ordered year, make, model; absent fields are skipped.
func (r Request) Path() string {
	switch r.Mode() {
	case ModeDetail:
		return fmt.Sprintf("/%d/%s/%s", r.Year, r.Make, r.Model)
	case ModeYears:
		return fmt.Sprintf("/%s/%s", r.Make, r.Model)
	case ModeModels:
		return fmt.Sprintf("/%d/%s", r.Year, r.Make)
	default:
		return "/" + r.Make
	}
}

// URL returns base concatenated with Path. No escaping is applied.
func (r Request) URL(base string) string {
	return base + r.Path()
}

// String returns a compact human-readable form such as "toyota corolla 2020".
func (r Request) String() string {
	s := r.Make
	if r.HasModel() {
		s += " " + r.Model
	}
	if r.HasYear() {
		s += " " + strconv.Itoa(r.Year)
	}
	return s
}
