// Package history persists past search queries in a local SQLite file.
package history

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS search_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL,
	source_lang TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// Open opens (and if needed creates) the history database.
func Open(databasePath string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", databasePath)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}
	// modernc's driver serializes writes itself, but a single
	// connection avoids SQLITE_BUSY on concurrent appends.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("db.Exec(schema) > %w", err)
	}
	return db, nil
}
