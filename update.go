package sqlbuilder

import "strings"

// Update builds an UPDATE statement. SET pairs keep their call order, so
// the rendered output is deterministic.
type Update struct {
	table string
	pairs []string
	where []string
	args  []interface{}
	err   error
}

// NewUpdate returns an empty UPDATE builder.
func NewUpdate() *Update {
	return &Update{}
}

func (u *Update) Table(t string) *Update {
	u.table = t
	return u
}

// Set appends one "column = value" pair.
func (u *Update) Set(column string, value interface{}) *Update {
	if u.err != nil {
		return u
	}
	if column == "" {
		u.err = newError(CodeInvalidColumnName, "update set column cannot be empty")
		return u
	}
	u.pairs = append(u.pairs, column+" = "+quoteValue(value))
	return u
}

// Where appends a raw condition, AND-ed onto any previous one.
func (u *Update) Where(parts ...string) *Update {
	if len(u.where) > 0 {
		u.where = append(u.where, "AND")
	}
	u.where = append(u.where, parts...)
	return u
}

// OrWhere appends a raw condition with OR.
func (u *Update) OrWhere(parts ...string) *Update {
	if len(u.where) > 0 {
		u.where = append(u.where, "OR")
	}
	u.where = append(u.where, parts...)
	return u
}

func (u *Update) WithArgs(args ...interface{}) *Update {
	u.args = append(u.args, args...)
	return u
}

// Build renders "UPDATE table SET pairs [WHERE cond]".
func (u *Update) Build() (string, []interface{}, error) {
	if u.err != nil {
		return "", nil, u.err
	}
	if u.table == "" {
		return "", nil, newError(CodeInvalidTableName, "update table name cannot be empty")
	}
	if len(u.pairs) == 0 {
		return "", nil, newError(CodeInvalidColumnName, "update requires at least one set pair")
	}
	query := "UPDATE " + u.table + " SET " + strings.Join(u.pairs, ", ")
	if len(u.where) > 0 {
		query += " WHERE " + strings.Join(u.where, " ")
	}
	return query, u.args, nil
}
