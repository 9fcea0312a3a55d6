package sqlbuilder

// GroupBy appends "GROUP BY c1, c2, ...".
func (s *Statement) GroupBy(columns ...string) *Statement {
	if s.err != nil {
		return s
	}
	if len(columns) == 0 {
		return s.fail(newError(CodeInvalidGroupByColumns, "group by requires at least one column"))
	}
	s.appendClause(&clause{typ: clauseTypeGroupBy, parts: columns, delimiter: ", "})
	return s
}
