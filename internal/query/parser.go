package query

import "fmt"

// ParseWhere parses a filter directive of the form <column><op><value>
// where op is one of <, = or >.
func ParseWhere(expr string) (*Comparison, error) {
	op, column, value, err := SplitExpression(expr, ComparisonOperators)
	if err != nil {
		return nil, err
	}
	return &Comparison{Column: column, Operator: op, Value: value}, nil
}

// ParseOrderBy parses an order directive of the form <column>=asc|desc.
func ParseOrderBy(expr string) (*Order, error) {
	_, column, direction, err := SplitExpression(expr, AssignOperator)
	if err != nil {
		return nil, err
	}

	switch Direction(direction) {
	case Asc, Desc:
	default:
		return nil, fmt.Errorf("%w: unsupported direction %q (use asc or desc)", ErrFormat, direction)
	}

	return &Order{Column: column, Direction: Direction(direction)}, nil
}

// ParseAggregate parses an aggregate directive of the form <column>=<function>.
//
// The function name is not checked here; see lookupAggregate.
func ParseAggregate(expr string) (*Aggregation, error) {
	_, column, fn, err := SplitExpression(expr, AssignOperator)
	if err != nil {
		return nil, err
	}
	return &Aggregation{Column: column, Func: fn}, nil
}
