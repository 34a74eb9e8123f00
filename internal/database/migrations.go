package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createStateSlicesTable,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// The whole application state is six serialized slices, so durable storage
// is a key-value table rather than one table per entity.
const createStateSlicesTable = `
CREATE TABLE IF NOT EXISTS state_slices (
    key VARCHAR(100) PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`
