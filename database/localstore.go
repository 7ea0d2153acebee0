package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenLocalStore opens (creating if needed) the device-local sqlite file
// backing the fallback record store.
func OpenLocalStore(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create local store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to local store: %w", err)
	}

	if err := migrateLocalStore(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func migrateLocalStore(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS local_records (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	kind       TEXT NOT NULL,
	user_id    TEXT NOT NULL,
	payload    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_local_records_kind_user ON local_records(kind, user_id, seq DESC);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate local store: %w", err)
	}
	return nil
}
