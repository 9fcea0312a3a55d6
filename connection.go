package sqlbuilder

import (
	"database/sql"
	"fmt"

	// Drivers
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Open opens a database handle for one of the bundled drivers and returns
// it together with the matching dialect. The builder itself never executes
// SQL; this is a convenience for callers that will run the rendered text.
func Open(driver string, connectionString string) (*sql.DB, *Dialect, error) {
	dialect, err := GetDialect(driver)
	if err != nil {
		return nil, nil, err
	}
	db, err := sql.Open(dialect.DriverName, connectionString)
	if err != nil {
		return nil, nil, err
	}
	return db, dialect, nil
}

// GetDialect maps a driver name to its dialect descriptor.
func GetDialect(driver string) (*Dialect, error) {
	switch driver {
	case "mysql":
		return Dialects.MySQL, nil
	case "sqlite", "sqlite3":
		return Dialects.SQLite3, nil
	case "postgres":
		return Dialects.PostgreSQL, nil
	default:
		return nil, fmt.Errorf("no dialect matched with driver %q", driver)
	}
}
