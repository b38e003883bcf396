// Package database stores the lookup history in SQLite (modernc.org/sqlite,
// no cgo).
//
// History is opt-in and write-mostly: every lookup run with --save appends
// one row to the lookups table, and the history command lists rows or shows
// one again. Stored results are never used to answer a new lookup.
package database
