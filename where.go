package sqlbuilder

import "strings"

// Binary comparison operators accepted by Compare.
const (
	OpEq = "="
	OpNE = "!="
	OpLT = "<"
	OpLE = "<="
	OpGT = ">"
	OpGE = ">="
)

var comparisonOperators = map[string]bool{
	OpEq: true, OpNE: true, "<>": true, OpLT: true, OpLE: true, OpGT: true, OpGE: true,
}

var notEqualsToOperators = map[string]bool{
	"!=": true, "<>": true,
}

// Where opens the WHERE clause on a column. The column waits for an
// operator method (EqualsTo, Like, Between, ...) to bind it; logical
// operators (And, Or, Not) open a fresh column on the same clause.
func (s *Statement) Where(column string) *Statement {
	if s.err != nil {
		return s
	}
	if s.selected == nil {
		return s.fail(newError(CodeNoPreviousSelectStatement, "where requires a select statement"))
	}
	if column == "" {
		return s.fail(newError(CodeInvalidColumnName, "where column name cannot be empty"))
	}
	w := &clause{typ: clauseTypeWhere, parts: []string{column}}
	s.cursor = w
	s.appendClause(w)
	return s
}

// Having opens a HAVING clause on an expression. It gets its own cursor, so
// operator methods after Having bind here and can no longer touch the WHERE
// clause.
func (s *Statement) Having(expression string) *Statement {
	if s.err != nil {
		return s
	}
	if expression == "" {
		return s.fail(newError(CodeInvalidHavingStatement, "having expression cannot be empty"))
	}
	h := &clause{typ: clauseTypeHaving, parts: []string{expression}}
	s.cursor = h
	s.appendClause(h)
	return s
}

// bind appends operator text to the current condition cursor.
func (s *Statement) bind(parts ...string) *Statement {
	if s.err != nil {
		return s
	}
	if s.cursor == nil {
		return s.fail(newError(CodeNoPreviousWhereStatement, "operator requires a where or having clause"))
	}
	s.cursor.parts = append(s.cursor.parts, parts...)
	return s
}

// Compare binds an arbitrary comparison operator from the allow-list.
func (s *Statement) Compare(op string, value interface{}) *Statement {
	if s.err != nil {
		return s
	}
	if !comparisonOperators[op] {
		return s.fail(newError(CodeInvalidComparisonOperator, "invalid comparison operator %q", op))
	}
	return s.bind(op, quoteValue(value))
}

// EqualsTo binds "= value". Strings are single-quoted, numbers render bare.
func (s *Statement) EqualsTo(value interface{}) *Statement {
	return s.bind(OpEq, quoteValue(value))
}

// NotEqualsTo binds "!= value" by default; pass "<>" as op to use the
// alternative spelling. Any other operator fails.
func (s *Statement) NotEqualsTo(value interface{}, op ...string) *Statement {
	if s.err != nil {
		return s
	}
	operator := OpNE
	if len(op) > 0 {
		operator = op[0]
	}
	if !notEqualsToOperators[operator] {
		return s.fail(newError(CodeInvalidNotEqualsToOperator, "not-equals-to operator must be != or <>, got %q", operator))
	}
	return s.bind(operator, quoteValue(value))
}

// LessThan binds "< value".
func (s *Statement) LessThan(value interface{}) *Statement {
	return s.bind(OpLT, quoteValue(value))
}

// LessThanEqualsTo binds "<= value".
func (s *Statement) LessThanEqualsTo(value interface{}) *Statement {
	return s.bind(OpLE, quoteValue(value))
}

// GreaterThan binds "> value".
func (s *Statement) GreaterThan(value interface{}) *Statement {
	return s.bind(OpGT, quoteValue(value))
}

// GreaterThanEqualsTo binds ">= value".
func (s *Statement) GreaterThanEqualsTo(value interface{}) *Statement {
	return s.bind(OpGE, quoteValue(value))
}

// logical appends "OP column" and reopens the cursor on the new column.
func (s *Statement) logical(op string, column string) *Statement {
	if s.err != nil {
		return s
	}
	if s.cursor == nil {
		return s.fail(newError(CodeNoPreviousWhereStatement, "%s requires a where or having clause", strings.ToLower(op)))
	}
	if column == "" {
		return s.fail(newError(CodeInvalidColumnName, "%s column name cannot be empty", strings.ToLower(op)))
	}
	s.cursor.parts = append(s.cursor.parts, op, column)
	return s
}

// And opens a new column joined with AND; it waits for its own operator.
func (s *Statement) And(column string) *Statement {
	return s.logical("AND", column)
}

// Or opens a new column joined with OR.
func (s *Statement) Or(column string) *Statement {
	return s.logical("OR", column)
}

// Not opens a new negated column.
func (s *Statement) Not(column string) *Statement {
	return s.logical("NOT", column)
}

// Like binds "LIKE 'pattern'". The pattern is always quoted.
func (s *Statement) Like(pattern string) *Statement {
	if s.err != nil {
		return s
	}
	if s.cursor == nil {
		return s.fail(newError(CodeNoPreviousWhereStatement, "like requires a where or having clause"))
	}
	if pattern == "" {
		return s.fail(newError(CodeInvalidPattern, "like pattern cannot be empty"))
	}
	return s.bind("LIKE", "'"+pattern+"'")
}

// NotLike binds "NOT LIKE 'pattern'".
func (s *Statement) NotLike(pattern string) *Statement {
	if s.err != nil {
		return s
	}
	if s.cursor == nil {
		return s.fail(newError(CodeNoPreviousWhereStatement, "not like requires a where or having clause"))
	}
	if pattern == "" {
		return s.fail(newError(CodeInvalidPattern, "not like pattern cannot be empty"))
	}
	return s.bind("NOT LIKE", "'"+pattern+"'")
}

// Between binds "BETWEEN start AND end". Bounds render raw: strings are not
// quoted here, callers pre-quote when needed.
func (s *Statement) Between(start, end interface{}) *Statement {
	return s.bind("BETWEEN", rawValue(start), "AND", rawValue(end))
}

// NotBetween binds "NOT BETWEEN start AND end".
func (s *Statement) NotBetween(start, end interface{}) *Statement {
	return s.bind("NOT BETWEEN", rawValue(start), "AND", rawValue(end))
}

// In binds "IN (v1, v2, ...)". Values render raw, as given.
func (s *Statement) In(values ...interface{}) *Statement {
	return s.bind("IN", renderList(values))
}

// NotIn binds "NOT IN (v1, v2, ...)".
func (s *Statement) NotIn(values ...interface{}) *Statement {
	return s.bind("NOT IN", renderList(values))
}

func renderList(values []interface{}) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, rawValue(v))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// IsNull binds "IS NULL".
func (s *Statement) IsNull() *Statement {
	return s.bind("IS NULL")
}

// IsNotNull binds "IS NOT NULL".
func (s *Statement) IsNotNull() *Statement {
	return s.bind("IS NOT NULL")
}
