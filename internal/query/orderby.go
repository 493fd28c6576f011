package query

import (
	"fmt"
	"sort"

	"github.com/vegasq/csvcat/internal/table"
)

// OrderBy returns a copy of t sorted by the order directive expr.
//
// Numeric columns sort as floats, Text columns as strings. The sort is
// stable for both directions: rows with equal keys keep their input order.
func OrderBy(t *table.Table, expr string) (*table.Table, error) {
	order, err := ParseOrderBy(expr)
	if err != nil {
		return nil, err
	}
	return ApplyOrderBy(t, order)
}

// ApplyOrderBy applies a parsed order directive to t.
func ApplyOrderBy(t *table.Table, order *Order) (*table.Table, error) {
	col, err := t.ColumnIndex(order.Column)
	if err != nil {
		return nil, err
	}

	c := codecFor(InferType(t.Rows, col))

	// Convert keys up front so a bad value fails before any reordering.
	type keyed struct {
		key Value
		row []string
	}
	items := make([]keyed, len(t.Rows))
	for i, row := range t.Rows {
		v, err := c.parse(field(row, col))
		if err != nil {
			return nil, fmt.Errorf("column %s, row %d: %w", order.Column, i+1, err)
		}
		items[i] = keyed{key: v, row: row}
	}

	desc := order.Direction == Desc
	sort.SliceStable(items, func(i, j int) bool {
		cmp := c.compare(items[i].key, items[j].key)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})

	sorted := make([][]string, len(items))
	for i, it := range items {
		sorted[i] = it.row
	}
	return t.WithRows(sorted), nil
}
