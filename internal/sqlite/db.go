package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the workspace schema. Each populated row is stored
// as a JSON cell array; notes and number formats live in side tables keyed
// by cell address.
func (db *DB) RunMigrations() error {
	migration := `
-- Named tables of the host document
CREATE TABLE IF NOT EXISTS sheets (
    name TEXT PRIMARY KEY,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Row contents, one JSON cell array per populated row
CREATE TABLE IF NOT EXISTS sheet_rows (
    sheet TEXT NOT NULL,
    row_num INTEGER NOT NULL,
    cells TEXT NOT NULL,
    PRIMARY KEY (sheet, row_num),
    FOREIGN KEY (sheet) REFERENCES sheets(name)
);

-- Cell notes, replaced on write
CREATE TABLE IF NOT EXISTS cell_notes (
    sheet TEXT NOT NULL,
    row_num INTEGER NOT NULL,
    col_num INTEGER NOT NULL,
    note TEXT NOT NULL,
    PRIMARY KEY (sheet, row_num, col_num)
);

-- Cell number formats
CREATE TABLE IF NOT EXISTS cell_formats (
    sheet TEXT NOT NULL,
    row_num INTEGER NOT NULL,
    col_num INTEGER NOT NULL,
    format TEXT NOT NULL,
    PRIMARY KEY (sheet, row_num, col_num)
);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
