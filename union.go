package sqlbuilder

// Union appends "UNION <other>". The operand must be a fully rendered,
// independent statement; no structural validation is performed on it.
func (s *Statement) Union(other string) *Statement {
	return s.union(clauseTypeUnion, other)
}

// UnionAll appends "UNION ALL <other>".
func (s *Statement) UnionAll(other string) *Statement {
	return s.union(clauseTypeUnionAll, other)
}

func (s *Statement) union(typ clauseType, other string) *Statement {
	if s.err != nil {
		return s
	}
	if other == "" {
		return s.fail(newError(CodeInvalidUnionQuery, "union query cannot be empty"))
	}
	s.appendClause(&clause{typ: typ, parts: []string{other}})
	return s
}
