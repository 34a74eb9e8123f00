package storage

import (
	"context"
	"database/sql"
	"fmt"

	"allurra/internal/database"
)

// PostgresAdapter stores each slice as a row in the state_slices table
type PostgresAdapter struct {
	db *database.DB
}

func NewPostgresAdapter(db *database.DB) (*PostgresAdapter, error) {
	if err := db.RunMigrations(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &PostgresAdapter{db: db}, nil
}

func (p *PostgresAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	var payload string
	query := `SELECT payload FROM state_slices WHERE key = $1`

	err := p.db.QueryRowContext(ctx, query, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return []byte(payload), nil
}

func (p *PostgresAdapter) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO state_slices (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = $2, updated_at = NOW()`

	if _, err := p.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (p *PostgresAdapter) Close() error {
	return p.db.Close()
}
