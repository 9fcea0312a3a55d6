package sqlbuilder

// join appends one join clause. Every join needs a target (table name or
// rendered subquery), an alias and both ON columns; anything missing is a
// malformed join descriptor. The ON clause renders the right column before
// the left one; the ordering is fixed and kept for output compatibility.
func (s *Statement) join(typ clauseType, target, alias, onLeft, onRight string, subquery bool) *Statement {
	if s.err != nil {
		return s
	}
	if target == "" || alias == "" || onLeft == "" || onRight == "" {
		return s.fail(newError(CodeInvalidJoinInfo, "join requires a target, an alias and both on columns"))
	}
	var parts []string
	if subquery {
		parts = []string{"(", target, ")"}
	} else {
		parts = []string{target}
	}
	parts = append(parts, "AS", alias, "ON", onRight, OpEq, onLeft)
	s.appendClause(&clause{typ: typ, parts: parts})
	return s
}

// InnerJoin appends "INNER JOIN table AS alias ON right = left".
func (s *Statement) InnerJoin(table, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeInnerJoin, table, alias, onLeft, onRight, false)
}

// InnerJoinSub joins a fully rendered subquery, wrapped in parentheses.
func (s *Statement) InnerJoinSub(sub, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeInnerJoin, sub, alias, onLeft, onRight, true)
}

func (s *Statement) LeftJoin(table, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeLeftJoin, table, alias, onLeft, onRight, false)
}

func (s *Statement) LeftJoinSub(sub, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeLeftJoin, sub, alias, onLeft, onRight, true)
}

func (s *Statement) RightJoin(table, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeRightJoin, table, alias, onLeft, onRight, false)
}

func (s *Statement) RightJoinSub(sub, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeRightJoin, sub, alias, onLeft, onRight, true)
}

func (s *Statement) FullJoin(table, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeFullJoin, table, alias, onLeft, onRight, false)
}

func (s *Statement) FullJoinSub(sub, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeFullJoin, sub, alias, onLeft, onRight, true)
}

func (s *Statement) CrossJoin(table, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeCrossJoin, table, alias, onLeft, onRight, false)
}

func (s *Statement) CrossJoinSub(sub, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeCrossJoin, sub, alias, onLeft, onRight, true)
}

func (s *Statement) SelfJoin(table, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeSelfJoin, table, alias, onLeft, onRight, false)
}

func (s *Statement) SelfJoinSub(sub, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeSelfJoin, sub, alias, onLeft, onRight, true)
}

func (s *Statement) NaturalJoin(table, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeNaturalJoin, table, alias, onLeft, onRight, false)
}

func (s *Statement) NaturalJoinSub(sub, alias, onLeft, onRight string) *Statement {
	return s.join(clauseTypeNaturalJoin, sub, alias, onLeft, onRight, true)
}
