package sqlbuilder

import "fmt"

// Dialect describes a target database flavor. It never changes how a
// statement renders; it carries the driver name for Open and the
// placeholder generator for callers pairing Raw placeholders with WithArgs.
type Dialect struct {
	DriverName                string
	PlaceholderChar           string
	IncludeIndexInPlaceholder bool
	PlaceHolderGenerator      func(n int) []string
}

var Dialects = &struct {
	MySQL      *Dialect
	PostgreSQL *Dialect
	SQLite3    *Dialect
}{
	MySQL: &Dialect{
		DriverName:                "mysql",
		PlaceholderChar:           "?",
		IncludeIndexInPlaceholder: false,
		PlaceHolderGenerator:      questionMarks,
	},
	PostgreSQL: &Dialect{
		DriverName:                "postgres",
		PlaceholderChar:           "$",
		IncludeIndexInPlaceholder: true,
		PlaceHolderGenerator:      postgresPlaceholder,
	},
	SQLite3: &Dialect{
		DriverName:                "sqlite3",
		PlaceholderChar:           "?",
		IncludeIndexInPlaceholder: false,
		PlaceHolderGenerator:      questionMarks,
	},
}

// Placeholders returns the dialect's first n placeholders, for feeding Raw
// values into operator methods.
func Placeholders(d *Dialect, n int) []string {
	return d.PlaceHolderGenerator(n)
}

func postgresPlaceholder(n int) []string {
	output := []string{}
	for i := 1; i < n+1; i++ {
		output = append(output, fmt.Sprintf("$%d", i))
	}
	return output
}

func questionMarks(n int) []string {
	output := []string{}
	for i := 0; i < n; i++ {
		output = append(output, "?")
	}
	return output
}
