package sqliterepo

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens the local save file and creates its tables.
func Open(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create save directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps transactions and plain queries on one file handle
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := createSchemas(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schemas: %w", err)
	}
	return db, nil
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS drill_states (
			colony_id TEXT NOT NULL,
			drill_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			active BOOLEAN NOT NULL DEFAULT 1,
			powered BOOLEAN NOT NULL DEFAULT 1,
			seq INTEGER NOT NULL,
			save_data TEXT NOT NULL DEFAULT '{}',
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (colony_id, drill_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_drill_states_colony_seq ON drill_states(colony_id, seq);`,
		`CREATE TABLE IF NOT EXISTS deposit_cells (
			colony_id TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			def_name TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (colony_id, x, y)
		);`,
	}
	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}
