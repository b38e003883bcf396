// Package model defines the data structures shared by the carspecs packages.
//
// This package contains the following main types:
//   - Request: The make/model/year a lookup was asked for
//   - Mode: Which of the four extraction strategies a Request selects
//   - Table: Rows and headers produced by an extraction
//   - Result: Everything a single lookup produced, including its Table
//
// None of these values outlive a single lookup unless the caller chooses
// to persist a Result through the database package.
package model
