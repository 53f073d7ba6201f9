package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations in one transaction. Every statement is
// idempotent so the full list is replayed on each open.
func Migrate(conn *sql.DB) error {
	return WithinTx(context.Background(), conn, func(ctx context.Context, tx DBTX) error {
		for i, stmt := range migrations {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration %d: %w", i, err)
			}
		}
		return nil
	})
}

var migrations = []string{
	// client_state is a tiny key/value table. The client persists exactly
	// one key ("token"); nothing about checklists is ever stored locally.
	`CREATE TABLE IF NOT EXISTS client_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
