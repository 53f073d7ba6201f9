package db

import (
	"context"
	"database/sql"
	"fmt"
)

// WithinTx runs fn in a transaction on conn. The transaction commits when fn
// returns nil and rolls back on an error or a panic.
func WithinTx(ctx context.Context, conn *sql.DB, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
