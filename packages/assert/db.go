package assert

import (
	"database/sql"
	"fmt"

	// SQLite driver for fixture databases.
	_ "github.com/mattn/go-sqlite3"
)

// QueryValue runs a single-value query and fails unless the scanned result
// equals want under its default string rendering. A query error fails the
// test.
func QueryValue(db *sql.DB, query string, want any) {
	var got any
	err := db.QueryRow(query).Scan(&got)
	True(err == nil)
	True(fmt.Sprintf("%v", got) == fmt.Sprintf("%v", want))
}

// RowCount fails unless the named table holds exactly want rows.
func RowCount(db *sql.DB, table string, want int) {
	var got int
	err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got)
	True(err == nil)
	True(got == want)
}
