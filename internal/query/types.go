// Package query implements the in-memory query engine behind csvcat.
//
// It parses the three directive forms (filter, order and aggregate),
// infers column types from a sample row, and applies the directives to a
// table.Table. Every engine returns a new table and leaves its input
// untouched.
//
// Example usage:
//
//	exec := query.NewExecutor(slog.Default())
//	result, err := exec.Execute(tbl, query.Plan{
//	    Where:   "price>500",
//	    OrderBy: "rating=desc",
//	})
package query

// ColumnType is the inferred type of a column.
type ColumnType int

const (
	Text ColumnType = iota
	Numeric
)

func (c ColumnType) String() string {
	switch c {
	case Numeric:
		return "numeric"
	default:
		return "text"
	}
}

// Operator is a comparison operator of a filter directive.
type Operator rune

const (
	OpLess    Operator = '<'
	OpEqual   Operator = '='
	OpGreater Operator = '>'
)

// holds reports whether the operator accepts a three-way comparison result.
func (op Operator) holds(cmp int) bool {
	switch op {
	case OpLess:
		return cmp < 0
	case OpEqual:
		return cmp == 0
	case OpGreater:
		return cmp > 0
	default:
		return false
	}
}

// Direction is the sort direction of an order directive.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// AggregateFunc names a supported aggregate function.
type AggregateFunc string

const (
	FuncAvg AggregateFunc = "avg"
	FuncMin AggregateFunc = "min"
	FuncMax AggregateFunc = "max"
)

// Comparison is a parsed filter directive such as "price>500".
type Comparison struct {
	Column   string
	Operator Operator
	Value    string
}

// Order is a parsed order directive such as "rating=desc".
type Order struct {
	Column    string
	Direction Direction
}

// Aggregation is a parsed aggregate directive such as "price=avg".
//
// Func is kept as written so the engine can check the column type before
// rejecting an unknown function name.
type Aggregation struct {
	Column string
	Func   string
}

// Plan lists the directives to apply to a table. Empty strings are skipped.
type Plan struct {
	Where     string
	OrderBy   string
	Aggregate string

	// Limit caps the number of rows returned (0 = unlimited). It has no
	// effect on aggregate results.
	Limit int
}
