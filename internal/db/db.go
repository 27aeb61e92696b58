// Package db provides a PostgreSQL-backed session recorder for server
// deployments, where audit trails outlive the local filesystem.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the session tables if they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS evaluation_sessions (
	id         TEXT PRIMARY KEY,
	job_title  TEXT NOT NULL,
	cv_text    TEXT NOT NULL,
	final      JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	completed_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS evaluation_stages (
	session_id  TEXT NOT NULL REFERENCES evaluation_sessions(id) ON DELETE CASCADE,
	stage       TEXT NOT NULL,
	prompt_text TEXT NOT NULL,
	messages    JSONB,
	response    JSONB,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (session_id, stage)
);`

	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
