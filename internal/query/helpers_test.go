package query

import (
	"strconv"
	"testing"

	"github.com/vegasq/csvcat/internal/table"
)

// newProducts returns a fresh copy of the product table used across tests.
func newProducts() *table.Table {
	return table.New(
		[]string{"name", "brand", "price", "rating"},
		[][]string{
			{"iphone 15 pro", "apple", "999", "4.9"},
			{"galaxy s23 ultra", "samsung", "1199", "4.8"},
			{"redmi note 12", "xiaomi", "199", "4.6"},
			{"iphone 14", "apple", "799", "4.7"},
			{"galaxy a54", "samsung", "349", "4.2"},
			{"poco x5 pro", "xiaomi", "299", "4.4"},
			{"iphone se", "apple", "429", "4.1"},
			{"galaxy z flip 5", "samsung", "999", "4.6"},
			{"redmi 10c", "xiaomi", "149", "4.1"},
			{"iphone 13 mini", "apple", "599", "4.5"},
		},
	)
}

// column extracts one column of t.
func column(t *table.Table, col int) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[col]
	}
	return values
}

// floats parses one column of t as floats.
func floats(tb testing.TB, t *table.Table, col int) []float64 {
	tb.Helper()
	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		f, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			tb.Fatalf("row %d: %v", i, err)
		}
		values[i] = f
	}
	return values
}
