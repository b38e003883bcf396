package report

import (
	"bytes"
	"io"

	"github.com/rodaine/table"

	"github.com/nao1215/carspecs/internal/model"
)

// SimpleWriter prints the result table as aligned columns with a dashed
// separator under the header. A result without a table prints nothing.
type SimpleWriter struct {
	baseWriter

	// padding is the minimum space between columns.
	padding int

	// separator is the rune repeated under each header; 0 disables it.
	separator rune
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithPadding sets the minimum number of spaces between columns.
func WithPadding(padding int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.padding = padding
	}
}

// WithSeparator sets the header separator rune. Zero disables the separator row.
func WithSeparator(r rune) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.separator = r
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		padding:    2,
		separator:  '-',
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write prints result.Table. Nothing is written when the result has no table.
func (w *SimpleWriter) Write(result *model.Result) (int, error) {
	if !result.Found() {
		return 0, nil
	}
	return w.WriteTable(result.Table)
}

// WriteTable prints t. A header-only table prints just the header lines.
func (w *SimpleWriter) WriteTable(t *model.Table) (int, error) {
	if t == nil || len(t.Header) == 0 {
		return 0, nil
	}

	headers := make([]interface{}, len(t.Header))
	for i, h := range t.Header {
		headers[i] = h
	}

	// Render into a buffer first so the byte count is exact.
	var buf bytes.Buffer
	tbl := table.New(headers...).
		WithWriter(&buf).
		WithPadding(w.padding).
		WithHeaderSeparatorRow(w.separator)
	tbl.SetRows(t.Rows)
	tbl.Print()

	return w.output.Write(buf.Bytes())
}
