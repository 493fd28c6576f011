package query

import (
	"fmt"
	"strings"
)

// OperatorSet lists the characters that separate the operands of a directive.
type OperatorSet string

const (
	// ComparisonOperators separate the operands of a filter directive.
	ComparisonOperators OperatorSet = "<=>"

	// AssignOperator separates the key and value of order and aggregate directives.
	AssignOperator OperatorSet = "="
)

func (s OperatorSet) contains(ch rune) bool {
	return strings.ContainsRune(string(s), ch)
}

// SplitExpression splits expr into exactly two operands around one operator.
//
// Every character found in operators ends the current operand and is
// recorded as the operator. Operands are returned verbatim without trimming.
// An expression with no operator, or with more than one, is an ErrFormat.
func SplitExpression(expr string, operators OperatorSet) (Operator, string, string, error) {
	if err := ValidateExpression(expr); err != nil {
		return 0, "", "", err
	}

	var op Operator
	segments := []*strings.Builder{{}}

	for _, ch := range expr {
		if operators.contains(ch) {
			segments = append(segments, &strings.Builder{})
			op = Operator(ch)
			continue
		}
		segments[len(segments)-1].WriteRune(ch)
	}

	if len(segments) != 2 {
		return 0, "", "", fmt.Errorf("%w: expected <column><operator><value> with one of %q, found %d operand(s)",
			ErrFormat, string(operators), len(segments))
	}

	return op, segments[0].String(), segments[1].String(), nil
}
