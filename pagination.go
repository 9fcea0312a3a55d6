package sqlbuilder

import "fmt"

// Pagination appends "LIMIT n" and, when an offset is given, "OFFSET m".
// Values are rendered as given; negative limits are the caller's problem.
func (s *Statement) Pagination(limit int, offset ...int) *Statement {
	if s.err != nil {
		return s
	}
	parts := []string{fmt.Sprint(limit)}
	if len(offset) > 0 {
		parts = append(parts, "OFFSET", fmt.Sprint(offset[0]))
	}
	s.appendClause(&clause{typ: clauseTypeLimit, parts: parts})
	return s
}
