package query

import (
	"errors"
	"fmt"

	"github.com/vegasq/csvcat/internal/table"
)

// MaxExpressionLength is the maximum allowed directive length (64KB)
const MaxExpressionLength = 64 * 1024

var (
	// ErrFormat is returned for a malformed directive: wrong number of
	// operands, or an unknown direction or function name.
	ErrFormat = errors.New("invalid format")

	// ErrLookup is returned when a directive names a column missing from the header.
	ErrLookup = table.ErrLookup

	// ErrConversion is returned when a literal or a field can not be
	// parsed as the column's inferred type.
	ErrConversion = errors.New("value can not be converted")

	// ErrType is returned when an aggregate is requested on a text column.
	ErrType = errors.New("column does not consist of numerical values")

	// ErrExpressionTooLong is returned when a directive exceeds MaxExpressionLength
	ErrExpressionTooLong = errors.New("expression too long")
)

// DirectiveError reports which directive failed and the text it was given.
type DirectiveError struct {
	Directive string
	Expr      string
	Err       error
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Directive, e.Expr, e.Err)
}

func (e *DirectiveError) Unwrap() error {
	return e.Err
}

// ValidateExpression performs length validation on directive input
func ValidateExpression(expr string) error {
	if len(expr) > MaxExpressionLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrExpressionTooLong, len(expr), MaxExpressionLength)
	}
	return nil
}
