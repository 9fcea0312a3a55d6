package sqlbuilder

import (
	"reflect"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

var pluralizer = pluralize.NewClient()

// TableName derives a conventional table name from a struct: the type name
// in snake case, pluralized. TableName(User{}) and TableName(&User{}) both
// return "users".
func TableName(v interface{}) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return pluralizer.Plural(strcase.ToSnake(t.Name()))
}

// ColumnName derives a conventional column name from a struct field name:
// "CreatedAt" becomes "created_at".
func ColumnName(field string) string {
	return strcase.ToSnake(field)
}

// FromEntity is From with the table name derived from a struct value.
func (s *Statement) FromEntity(v interface{}, alias ...string) *Statement {
	return s.From(TableName(v), alias...)
}
