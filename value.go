package sqlbuilder

import "fmt"

// Raw is a SQL expression rendered verbatim, with no quoting. Use it for
// placeholders ("$1", "?"), column references and function calls inside
// operator values.
type Raw string

// quoteValue renders a comparison operand. Go strings are single-quoted,
// Raw expressions and everything else (numbers, booleans) render bare. No
// escaping is performed; values are interpolated as given.
func quoteValue(v interface{}) string {
	switch t := v.(type) {
	case Raw:
		return string(t)
	case string:
		return "'" + t + "'"
	default:
		return fmt.Sprint(v)
	}
}

// rawValue renders a range or list operand. Unlike quoteValue, Go strings
// are NOT quoted here; callers pass pre-quoted literals when they want
// quoting. The asymmetry with the comparison operators is deliberate and
// kept for output compatibility.
func rawValue(v interface{}) string {
	if r, ok := v.(Raw); ok {
		return string(r)
	}
	return fmt.Sprint(v)
}
