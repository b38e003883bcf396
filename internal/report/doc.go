// Package report renders lookup results.
//
// Writers for the supported output formats:
//   - SimpleWriter: aligned plain-text columns for terminal display
//   - MarkdownWriter: a heading and a GitHub-flavored table
//   - JSONWriter: the whole result for tool integration
//
// All writers implement Writer, so the CLI picks one by flag and never
// looks at the format again.
package report
