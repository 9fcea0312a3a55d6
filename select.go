package sqlbuilder

// Column is one projected column of the select list.
type Column struct {
	Name  string
	Alias string
}

// Col builds a Column with no alias.
func Col(name string) Column {
	return Column{Name: name}
}

// As returns a copy of the column carrying an alias.
func (c Column) As(alias string) Column {
	c.Alias = alias
	return c
}

func (c Column) render() string {
	if c.Alias == "" {
		return c.Name
	}
	return c.Name + " AS " + c.Alias
}

// Select appends projection columns. It is the opening clause of every
// statement; the clause list stays untouched when validation fails.
func (s *Statement) Select(columns ...Column) *Statement {
	if s.err != nil {
		return s
	}
	if len(columns) == 0 {
		return s.fail(newError(CodeInvalidColumnName, "select requires at least one column"))
	}
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		if c.Name == "" {
			return s.fail(newError(CodeInvalidColumnName, "select column name cannot be empty"))
		}
		parts = append(parts, c.render())
	}
	if s.selected == nil {
		s.selected = &clause{typ: clauseTypeSelect, parts: parts, delimiter: ", "}
		s.appendClause(s.selected)
		return s
	}
	s.selected.parts = append(s.selected.parts, parts...)
	return s
}

// Distinct marks the select list DISTINCT. It requires a prior Select.
func (s *Statement) Distinct() *Statement {
	if s.err != nil {
		return s
	}
	if s.selected == nil {
		return s.fail(newError(CodeNoPreviousSelectStatement, "distinct requires a select statement"))
	}
	if !s.distinct {
		s.distinct = true
		s.selected.typ = clauseTypeSelect + " DISTINCT"
	}
	return s
}
