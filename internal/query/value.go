package query

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Value is a field converted to its column's type. Only the member matching
// Kind is meaningful.
type Value struct {
	Kind ColumnType
	Num  float64
	Str  string
}

// NumberValue wraps a float as a Numeric value.
func NumberValue(f float64) Value {
	return Value{Kind: Numeric, Num: f}
}

// TextValue wraps a string as a Text value.
func TextValue(s string) Value {
	return Value{Kind: Text, Str: s}
}

func (v Value) String() string {
	if v.Kind == Numeric {
		return formatNumber(v.Num)
	}
	return v.Str
}

// codec converts and compares the fields of one column type. It is chosen
// once per column so the per-row loops never branch on the type.
//
// compare is a total order used for sorting. match evaluates a filter
// operator and follows IEEE rules for numbers, so NaN matches nothing.
type codec struct {
	kind    ColumnType
	parse   func(field string) (Value, error)
	compare func(a, b Value) int
	match   func(a Value, op Operator, b Value) bool
}

func codecFor(kind ColumnType) codec {
	if kind == Numeric {
		return codec{kind: Numeric, parse: parseNumberValue, compare: compareNumbers, match: matchNumbers}
	}
	return codec{kind: Text, parse: parseTextValue, compare: compareStrings, match: matchStrings}
}

func parseNumberValue(field string) (Value, error) {
	f, err := parseNumber(field)
	if err != nil {
		return Value{}, err
	}
	return NumberValue(f), nil
}

func parseTextValue(field string) (Value, error) {
	return TextValue(field), nil
}

// compareNumbers orders NaN before every other number.
func compareNumbers(a, b Value) int {
	return cmp.Compare(a.Num, b.Num)
}

func matchNumbers(a Value, op Operator, b Value) bool {
	switch op {
	case OpLess:
		return a.Num < b.Num
	case OpEqual:
		return a.Num == b.Num
	case OpGreater:
		return a.Num > b.Num
	default:
		return false
	}
}

func matchStrings(a Value, op Operator, b Value) bool {
	return op.holds(strings.Compare(a.Str, b.Str))
}

// compareStrings compares two strings byte-wise (case-sensitive)
func compareStrings(a, b Value) int {
	return strings.Compare(a.Str, b.Str)
}

// parseNumber parses a field as a 64-bit float. Surrounding whitespace is
// ignored.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrConversion, s)
	}
	return f, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
