package repos

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// OpenDB opens the sqlite database at path, or an in-memory database when
// path is empty.
func OpenDB(path string) (*sql.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("Error opening database (%s): %w", path, err)
	}
	// every connection to :memory: is its own database
	db.SetMaxOpenConns(1)
	return db, nil
}
