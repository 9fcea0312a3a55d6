package sqlbuilder

import "fmt"

// ErrorCode identifies one validation rule of the builder. Codes are stable:
// new codes are only ever appended.
type ErrorCode int

const (
	CodeInvalidColumnName ErrorCode = iota + 1
	CodeNoPreviousSelectStatement
	CodeInvalidTableName
	CodeInvalidAlias
	CodeNoPreviousWhereStatement
	CodeMultipleFromStatement
	CodeInvalidComparisonOperator
	CodeInvalidNotEqualsToOperator
	CodeInvalidPattern
	CodeInvalidJoinInfo
	CodeInvalidUnionQuery
	CodeInvalidGroupByColumns
	CodeInvalidOrderByColumns
	CodeInvalidOrderColumnName
	CodeInvalidHavingStatement
)

// Error is the error type returned for every misuse of a builder. Callers
// should treat these as programming errors in the call sequence, not as
// transient failures.
type Error struct {
	Code   ErrorCode
	detail string
}

func (e *Error) Error() string {
	if e.detail == "" {
		return fmt.Sprintf("sqlbuilder: error %d", e.Code)
	}
	return fmt.Sprintf("sqlbuilder: %s", e.detail)
}

// Is matches any *Error carrying the same code, so
// errors.Is(err, ErrInvalidColumnName) works regardless of detail text.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, detail: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is matching, one per validation rule.
var (
	ErrInvalidColumnName          = &Error{Code: CodeInvalidColumnName, detail: "invalid column name"}
	ErrNoPreviousSelectStatement  = &Error{Code: CodeNoPreviousSelectStatement, detail: "no previous select statement"}
	ErrInvalidTableName           = &Error{Code: CodeInvalidTableName, detail: "invalid table name"}
	ErrInvalidAlias               = &Error{Code: CodeInvalidAlias, detail: "invalid alias"}
	ErrNoPreviousWhereStatement   = &Error{Code: CodeNoPreviousWhereStatement, detail: "no previous where statement"}
	ErrMultipleFromStatement      = &Error{Code: CodeMultipleFromStatement, detail: "multiple from statement"}
	ErrInvalidComparisonOperator  = &Error{Code: CodeInvalidComparisonOperator, detail: "invalid comparison operator"}
	ErrInvalidNotEqualsToOperator = &Error{Code: CodeInvalidNotEqualsToOperator, detail: "invalid not-equals-to operator"}
	ErrInvalidPattern             = &Error{Code: CodeInvalidPattern, detail: "invalid pattern"}
	ErrInvalidJoinInfo            = &Error{Code: CodeInvalidJoinInfo, detail: "invalid join info"}
	ErrInvalidUnionQuery          = &Error{Code: CodeInvalidUnionQuery, detail: "invalid union query"}
	ErrInvalidGroupByColumns      = &Error{Code: CodeInvalidGroupByColumns, detail: "invalid group by columns"}
	ErrInvalidOrderByColumns      = &Error{Code: CodeInvalidOrderByColumns, detail: "invalid order by columns"}
	ErrInvalidOrderColumnName     = &Error{Code: CodeInvalidOrderColumnName, detail: "invalid order column name"}
	ErrInvalidHavingStatement     = &Error{Code: CodeInvalidHavingStatement, detail: "invalid having statement"}
)
