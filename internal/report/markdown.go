package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/carspecs/internal/model"
)

// MarkdownWriter outputs the result as a Markdown section: a heading naming
// the car, the source URL, then the table.
type MarkdownWriter struct {
	baseWriter

	title cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		title:      cases.Title(language.English),
	}
}

// Write outputs the result in Markdown format.
// A result without a table is rendered as a warning instead of a table, and
// a header-only table is followed by a note.
func (w *MarkdownWriter) Write(result *model.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H2(w.title.String(result.Request.String()))
	md.PlainText("")
	md.PlainTextf("Source: <%s>", result.URL)
	md.PlainText("")

	switch {
	case !result.Found():
		md.Warning("No data could be extracted from this page.")
	case result.Table.IsEmpty():
		md.Table(markdown.TableSet{Header: result.Table.Header, Rows: [][]string{}})
		md.Note("The page listed no rows.")
	default:
		md.Table(markdown.TableSet{
			Header: result.Table.Header,
			Rows:   escapeRows(result.Table.Rows),
		})
	}

	return len(md.String()), md.Build()
}

// escapeRows escapes pipe characters so a cell cannot split a table column.
func escapeRows(rows [][]string) [][]string {
	escaped := make([][]string, len(rows))
	for i, row := range rows {
		escaped[i] = make([]string, len(row))
		for j, cell := range row {
			escaped[i][j] = strings.ReplaceAll(cell, "|", `\|`)
		}
	}
	return escaped
}
