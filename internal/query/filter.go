package query

import (
	"fmt"

	"github.com/vegasq/csvcat/internal/table"
)

// Filter returns the rows of t that satisfy the filter directive expr,
// in their original order.
//
// On a Numeric column both the literal and every row value are compared as
// floats, for all three operators. On a Text column the raw strings are
// compared. No matching rows is not an error.
func Filter(t *table.Table, expr string) (*table.Table, error) {
	cond, err := ParseWhere(expr)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(t, cond)
}

// ApplyFilter applies a parsed comparison to t.
func ApplyFilter(t *table.Table, cond *Comparison) (*table.Table, error) {
	col, err := t.ColumnIndex(cond.Column)
	if err != nil {
		return nil, err
	}

	c := codecFor(InferType(t.Rows, col))

	literal, err := c.parse(cond.Value)
	if err != nil {
		return nil, fmt.Errorf("%w (column %s is %s)", err, cond.Column, c.kind)
	}

	filtered := make([][]string, 0)
	for i, row := range t.Rows {
		v, err := c.parse(field(row, col))
		if err != nil {
			return nil, fmt.Errorf("column %s, row %d: %w", cond.Column, i+1, err)
		}
		if c.match(v, cond.Operator, literal) {
			filtered = append(filtered, row)
		}
	}

	return t.WithRows(filtered), nil
}

// field returns row[col], or "" when the row is too short.
func field(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
