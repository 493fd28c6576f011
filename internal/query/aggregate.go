package query

import (
	"fmt"
	"math"

	"github.com/vegasq/csvcat/internal/table"
)

type aggregator func(values []float64) float64

var aggregators = map[AggregateFunc]aggregator{
	FuncAvg: avg,
	FuncMin: minimum,
	FuncMax: maximum,
}

// lookupAggregate resolves a function name to its implementation.
func lookupAggregate(name string) (aggregator, error) {
	fn, ok := aggregators[AggregateFunc(name)]
	if !ok {
		return nil, fmt.Errorf("%w: aggregate function %q is not supported (use avg, min or max)", ErrFormat, name)
	}
	return fn, nil
}

// Aggregate folds one numeric column of t into a single value.
//
// The result has no header and two rows: the function name, then the
// value. Checks run in this order: directive format, column name, column
// type, function name.
func Aggregate(t *table.Table, expr string) (*table.Table, error) {
	agg, err := ParseAggregate(expr)
	if err != nil {
		return nil, err
	}
	return ApplyAggregate(t, agg)
}

// ApplyAggregate applies a parsed aggregate directive to t.
func ApplyAggregate(t *table.Table, agg *Aggregation) (*table.Table, error) {
	col, err := t.ColumnIndex(agg.Column)
	if err != nil {
		return nil, err
	}

	// Inference needs a second row to report Numeric, so the folds below
	// never see an empty column.
	if InferType(t.Rows, col) != Numeric {
		return nil, fmt.Errorf("%w: %s", ErrType, agg.Column)
	}

	fn, err := lookupAggregate(agg.Func)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		v, err := parseNumber(field(row, col))
		if err != nil {
			return nil, fmt.Errorf("column %s, row %d: %w", agg.Column, i+1, err)
		}
		values[i] = v
	}

	result := NumberValue(fn(values))
	return table.New(nil, [][]string{{agg.Func}, {result.String()}}), nil
}

func avg(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// minimum includes the first row; every row is a candidate. NaN values
// never compare lower, so they are skipped.
func minimum(values []float64) float64 {
	result := math.Inf(1)
	for _, v := range values {
		if v < result {
			result = v
		}
	}
	return result
}

func maximum(values []float64) float64 {
	result := math.Inf(-1)
	for _, v := range values {
		if v > result {
			result = v
		}
	}
	return result
}
