// Package table holds the in-memory tabular store: a header row and the
// data rows as text fields, in the order they were read.
package table

import (
	"errors"
	"fmt"
)

// ErrLookup is returned when a column name is not present in the header.
var ErrLookup = errors.New("column does not exist")

// Table is a header plus data rows. Every row has one field per header
// column. Header is nil for results that carry no column names, such as
// an aggregate.
type Table struct {
	Header []string
	Rows   [][]string
}

// New creates a table from a header and rows without copying them.
func New(header []string, rows [][]string) *Table {
	if rows == nil {
		rows = [][]string{}
	}
	return &Table{Header: header, Rows: rows}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of name in the header.
//
// The search is linear and case-sensitive. The first matching column wins
// when the header has duplicates.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, col := range t.Header {
		if col == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrLookup, name)
}

// WithRows returns a new table sharing the header but holding rows.
func (t *Table) WithRows(rows [][]string) *Table {
	return New(t.Header, rows)
}
