package sqlbuilder

import "strings"

// Insert builds an INSERT statement. Values follow the same quoting rules
// as the comparison operators: strings quoted, numbers bare, Raw verbatim.
type Insert struct {
	table string
	cols  []string
	rows  [][]string
	args  []interface{}
	err   error
}

// NewInsert returns an empty INSERT builder.
func NewInsert() *Insert {
	return &Insert{}
}

func (i *Insert) Table(t string) *Insert {
	i.table = t
	return i
}

// Into sets the column list.
func (i *Insert) Into(cols ...string) *Insert {
	if i.err != nil {
		return i
	}
	for _, c := range cols {
		if c == "" {
			i.err = newError(CodeInvalidColumnName, "insert column name cannot be empty")
			return i
		}
	}
	i.cols = append(i.cols, cols...)
	return i
}

// Values appends one row.
func (i *Insert) Values(values ...interface{}) *Insert {
	if i.err != nil {
		return i
	}
	row := make([]string, 0, len(values))
	for _, v := range values {
		row = append(row, quoteValue(v))
	}
	i.rows = append(i.rows, row)
	return i
}

func (i *Insert) WithArgs(args ...interface{}) *Insert {
	i.args = append(i.args, args...)
	return i
}

// Build renders "INSERT INTO table (cols) VALUES (row), (row)".
func (i *Insert) Build() (string, []interface{}, error) {
	if i.err != nil {
		return "", nil, i.err
	}
	if i.table == "" {
		return "", nil, newError(CodeInvalidTableName, "insert table name cannot be empty")
	}
	if len(i.cols) == 0 || len(i.rows) == 0 {
		return "", nil, newError(CodeInvalidColumnName, "insert requires columns and at least one row")
	}
	joined := make([]string, 0, len(i.rows))
	for _, row := range i.rows {
		joined = append(joined, "("+strings.Join(row, ", ")+")")
	}
	query := "INSERT INTO " + i.table +
		" (" + strings.Join(i.cols, ", ") + ")" +
		" VALUES " + strings.Join(joined, ", ")
	return query, i.args, nil
}
