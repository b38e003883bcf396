package model

// Table is a rectangular set of extracted strings with column headers.
// Every row has exactly len(Header) cells.
type Table struct {
	// Header holds the column names, e.g. ["year", "model"].
	Header []string `json:"header"`

	// Rows holds the cells in document order.
	Rows [][]string `json:"rows"`
}

// NewTable builds a Table by pairing parallel columns by index.
//
// Columns may have unequal lengths. The table has as many rows as the
// longest column and missing cells are left empty rather than truncating
// the longer columns. Columns beyond len(header) are ignored.
//
// Pairing is purely positional. Two columns extracted
// independently are zipped by index even when nothing in the source ties
// the i-th entries together.
func NewTable(header []string, columns ...[]string) *Table {
	rowCount := 0
	for i, col := range columns {
		if i >= len(header) {
			break
		}
		if len(col) > rowCount {
			rowCount = len(col)
		}
	}

	rows := make([][]string, rowCount)
	for r := range rows {
		row := make([]string, len(header))
		for c := range header {
			if c < len(columns) && r < len(columns[c]) {
				row[c] = columns[c][r]
			}
		}
		rows[r] = row
	}

	return &Table{
		Header: append([]string(nil), header...),
		Rows:   rows,
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// IsEmpty reports whether the table has no rows (header-only).
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}
