package sqlbuilder

// From sets the statement's table. It requires a prior Select and a
// non-empty table name; the optional alias renders as "AS alias".
func (s *Statement) From(table string, alias ...string) *Statement {
	if s.err != nil {
		return s
	}
	if s.selected == nil {
		return s.fail(newError(CodeNoPreviousSelectStatement, "from requires a select statement"))
	}
	if table == "" {
		return s.fail(newError(CodeInvalidTableName, "from table name cannot be empty"))
	}
	parts := []string{table}
	if len(alias) > 0 && alias[0] != "" {
		parts = append(parts, "AS", alias[0])
	}
	s.from = &clause{typ: clauseTypeFrom, parts: parts}
	s.appendClause(s.from)
	return s
}

// FromSubquery sets a fully rendered subquery as the statement's source.
// The alias is mandatory, and a statement may only carry one FROM.
func (s *Statement) FromSubquery(sub string, alias string) *Statement {
	if s.err != nil {
		return s
	}
	if alias == "" {
		return s.fail(newError(CodeInvalidAlias, "from subquery requires an alias"))
	}
	if s.from != nil {
		return s.fail(newError(CodeMultipleFromStatement, "statement already has a from clause"))
	}
	s.from = &clause{typ: clauseTypeFrom, parts: []string{"(", sub, ")", "AS", alias}}
	s.appendClause(s.from)
	return s
}
