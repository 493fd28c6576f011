package query

import (
	"log/slog"

	"github.com/vegasq/csvcat/internal/table"
)

// Directive names used in DirectiveError.
const (
	DirectiveWhere     = "where"
	DirectiveOrderBy   = "order-by"
	DirectiveAggregate = "aggregate"
)

// Executor runs a Plan against a table.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates an executor that logs each step to logger.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{logger: logger}
}

// steps holds the parsed directives of a plan. A nil step is skipped.
type steps struct {
	where     *Comparison
	order     *Order
	aggregate *Aggregation
}

// prepare parses every directive of plan and resolves its column against
// the header of t, so a bad directive fails before any row is read.
func prepare(t *table.Table, plan Plan) (steps, error) {
	var s steps

	if plan.Where != "" {
		where, err := ParseWhere(plan.Where)
		if err == nil {
			_, err = t.ColumnIndex(where.Column)
		}
		if err != nil {
			return steps{}, &DirectiveError{Directive: DirectiveWhere, Expr: plan.Where, Err: err}
		}
		s.where = where
	}

	if plan.OrderBy != "" {
		order, err := ParseOrderBy(plan.OrderBy)
		if err == nil {
			_, err = t.ColumnIndex(order.Column)
		}
		if err != nil {
			return steps{}, &DirectiveError{Directive: DirectiveOrderBy, Expr: plan.OrderBy, Err: err}
		}
		s.order = order
	}

	if plan.Aggregate != "" {
		agg, err := ParseAggregate(plan.Aggregate)
		if err == nil {
			_, err = t.ColumnIndex(agg.Column)
		}
		if err != nil {
			return steps{}, &DirectiveError{Directive: DirectiveAggregate, Expr: plan.Aggregate, Err: err}
		}
		s.aggregate = agg
	}

	return s, nil
}

// Execute applies the plan's directives in a fixed order: filter, order,
// aggregate. Limit applies only when no aggregate is requested.
//
// All directives are parsed and their columns resolved before any step
// runs. The first failing directive aborts the run and is returned as a
// *DirectiveError.
func (e *Executor) Execute(t *table.Table, plan Plan) (*table.Table, error) {
	s, err := prepare(t, plan)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("loaded table", "columns", len(t.Header), "rows", t.Len())

	if s.where != nil {
		t, err = ApplyFilter(t, s.where)
		if err != nil {
			return nil, &DirectiveError{Directive: DirectiveWhere, Expr: plan.Where, Err: err}
		}
		e.logger.Debug("applied filter", "where", plan.Where, "rows", t.Len())
	}

	if s.order != nil {
		t, err = ApplyOrderBy(t, s.order)
		if err != nil {
			return nil, &DirectiveError{Directive: DirectiveOrderBy, Expr: plan.OrderBy, Err: err}
		}
		e.logger.Debug("applied order", "order_by", plan.OrderBy)
	}

	if s.aggregate != nil {
		t, err = ApplyAggregate(t, s.aggregate)
		if err != nil {
			return nil, &DirectiveError{Directive: DirectiveAggregate, Expr: plan.Aggregate, Err: err}
		}
		e.logger.Debug("applied aggregate", "aggregate", plan.Aggregate, "result", t.Rows[1][0])
		return t, nil
	}

	return ApplyLimit(t, plan.Limit), nil
}

// ApplyLimit keeps the first limit rows of t. A limit of 0 keeps all rows.
func ApplyLimit(t *table.Table, limit int) *table.Table {
	if limit <= 0 || t.Len() <= limit {
		return t
	}
	return t.WithRows(t.Rows[:limit])
}

// ColumnSchema is a column name with its inferred type.
type ColumnSchema struct {
	Name string
	Type ColumnType
}

// Schema infers the type of every column of t.
func Schema(t *table.Table) []ColumnSchema {
	schema := make([]ColumnSchema, len(t.Header))
	for i, name := range t.Header {
		schema[i] = ColumnSchema{Name: name, Type: InferType(t.Rows, i)}
	}
	return schema
}
