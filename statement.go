// Package sqlbuilder assembles SQL statements through a fluent, chainable
// API and renders them to text on demand. It never executes SQL; the output
// string is handed to whatever driver the caller uses.
package sqlbuilder

import "strings"

type clauseType string

const (
	clauseTypeSelect      clauseType = "SELECT"
	clauseTypeFrom        clauseType = "FROM"
	clauseTypeWhere       clauseType = "WHERE"
	clauseTypeHaving      clauseType = "HAVING"
	clauseTypeGroupBy     clauseType = "GROUP BY"
	clauseTypeOrderBy     clauseType = "ORDER BY"
	clauseTypeLimit       clauseType = "LIMIT"
	clauseTypeUnion       clauseType = "UNION"
	clauseTypeUnionAll    clauseType = "UNION ALL"
	clauseTypeInnerJoin   clauseType = "INNER JOIN"
	clauseTypeLeftJoin    clauseType = "LEFT JOIN"
	clauseTypeRightJoin   clauseType = "RIGHT JOIN"
	clauseTypeFullJoin    clauseType = "FULL JOIN"
	clauseTypeCrossJoin   clauseType = "CROSS JOIN"
	clauseTypeSelfJoin    clauseType = "SELF JOIN"
	clauseTypeNaturalJoin clauseType = "NATURAL JOIN"
)

// clause is one rendered segment of the statement. Statements hold clauses
// in call order, so "append to the current WHERE" is a mutation of the last
// where clause node, never a substring splice of already-rendered text.
type clause struct {
	typ       clauseType
	parts     []string
	delimiter string
}

func (c *clause) String() string {
	if c.delimiter == "" {
		c.delimiter = " "
	}
	return string(c.typ) + " " + strings.Join(c.parts, c.delimiter)
}

// Statement accumulates SQL clauses and renders them with SQL. A Statement
// is owned by a single goroutine; independent statements (for subqueries or
// union operands) share nothing and may be built concurrently.
//
// cursor points at the condition clause opened by the last Where, Having,
// And, Or or Not call; operator methods append to it. WHERE and HAVING each
// get their own clause node, so operators can never bind to the wrong one.
type Statement struct {
	dialect  *Dialect
	logger   Logger
	clauses  []*clause
	selected *clause
	from     *clause
	distinct bool
	cursor   *clause
	args     []interface{}
	err      error
}

// New returns an empty statement builder.
func New() *Statement {
	return &Statement{}
}

// WithDialect attaches a dialect descriptor. The dialect does not change
// rendering; it carries the driver name and placeholder generator for
// callers that pair rendered text with a database/sql driver.
func (s *Statement) WithDialect(d *Dialect) *Statement {
	s.dialect = d
	return s
}

// Dialect returns the dialect attached with WithDialect, or nil.
func (s *Statement) Dialect() *Dialect {
	return s.dialect
}

// WithLogger attaches a logger; every successful SQL call is debug-logged.
func (s *Statement) WithLogger(l Logger) *Statement {
	s.logger = l
	return s
}

// WithArgs records driver arguments to be returned by Build, for callers
// that put Raw placeholders into the statement.
func (s *Statement) WithArgs(args ...interface{}) *Statement {
	if s.err != nil {
		return s
	}
	s.args = append(s.args, args...)
	return s
}

// fail records the first violation. Later calls on the statement become
// no-ops so a failing call never leaves a half-mutated clause list behind.
func (s *Statement) fail(err *Error) *Statement {
	if s.err == nil {
		s.err = err
	}
	return s
}

func (s *Statement) appendClause(c *clause) {
	s.clauses = append(s.clauses, c)
}

// SQL renders the accumulated clauses, or returns the first sequencing
// error recorded on the statement. Rendering is read-only: calling SQL
// twice without further mutation returns identical strings.
func (s *Statement) SQL() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	sections := make([]string, 0, len(s.clauses))
	for _, c := range s.clauses {
		sections = append(sections, c.String())
	}
	out := strings.Join(sections, " ")
	if s.logger != nil {
		s.logger.Debugf("built query: %s", out)
	}
	return out, nil
}

// Build renders the statement together with the arguments collected by
// WithArgs.
func (s *Statement) Build() (string, []interface{}, error) {
	query, err := s.SQL()
	if err != nil {
		return "", nil, err
	}
	return query, s.args, nil
}

// String implements fmt.Stringer. It returns the empty string when the
// statement carries an error; use SQL or Err to observe it.
func (s *Statement) String() string {
	out, _ := s.SQL()
	return out
}

// Err reports the first sequencing or validation error, if any.
func (s *Statement) Err() error {
	return s.err
}
