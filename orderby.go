package sqlbuilder

import "strings"

// Order is one ORDER BY entry. An empty or "asc" direction renders the
// column alone; "desc" (any case) emits the DESC keyword.
type Order struct {
	Column    string
	Direction string
}

// Asc orders a column ascending (no keyword emitted).
func Asc(column string) Order {
	return Order{Column: column}
}

// Desc orders a column descending.
func Desc(column string) Order {
	return Order{Column: column, Direction: "DESC"}
}

func (o Order) render() string {
	if strings.EqualFold(o.Direction, "desc") {
		return o.Column + " DESC"
	}
	return o.Column
}

// OrderBy appends "ORDER BY c1 [DESC], c2 [DESC], ...".
func (s *Statement) OrderBy(orders ...Order) *Statement {
	if s.err != nil {
		return s
	}
	if len(orders) == 0 {
		return s.fail(newError(CodeInvalidOrderByColumns, "order by requires at least one column"))
	}
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.Column == "" {
			return s.fail(newError(CodeInvalidOrderColumnName, "order by column name cannot be empty"))
		}
		parts = append(parts, o.render())
	}
	s.appendClause(&clause{typ: clauseTypeOrderBy, parts: parts, delimiter: ", "})
	return s
}
