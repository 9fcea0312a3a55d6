package sqlbuilder

import "strings"

// Delete builds a DELETE statement.
type Delete struct {
	table string
	where []string
	args  []interface{}
}

// NewDelete returns an empty DELETE builder.
func NewDelete() *Delete {
	return &Delete{}
}

func (d *Delete) Table(t string) *Delete {
	d.table = t
	return d
}

// Where appends a raw condition, AND-ed onto any previous one.
func (d *Delete) Where(parts ...string) *Delete {
	if len(d.where) > 0 {
		d.where = append(d.where, "AND")
	}
	d.where = append(d.where, parts...)
	return d
}

// OrWhere appends a raw condition with OR.
func (d *Delete) OrWhere(parts ...string) *Delete {
	if len(d.where) > 0 {
		d.where = append(d.where, "OR")
	}
	d.where = append(d.where, parts...)
	return d
}

func (d *Delete) WithArgs(args ...interface{}) *Delete {
	d.args = append(d.args, args...)
	return d
}

// Build renders "DELETE FROM table [WHERE cond]".
func (d *Delete) Build() (string, []interface{}, error) {
	if d.table == "" {
		return "", nil, newError(CodeInvalidTableName, "delete table name cannot be empty")
	}
	query := "DELETE FROM " + d.table
	if len(d.where) > 0 {
		query += " WHERE " + strings.Join(d.where, " ")
	}
	return query, d.args, nil
}
