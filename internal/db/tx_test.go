package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countState(t *testing.T, tx DBTX, key string) int {
	t.Helper()
	var n int
	err := tx.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM client_state WHERE key = ?`, key).Scan(&n)
	require.NoError(t, err)
	return n
}

func insertState(ctx context.Context, tx DBTX, key string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO client_state (key, value, updated_at) VALUES (?, 'v', 'now')`, key)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	conn := openTestDB(t)

	err := WithinTx(context.Background(), conn, func(ctx context.Context, tx DBTX) error {
		return insertState(ctx, tx, "k1")
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countState(t, conn, "k1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	conn := openTestDB(t)
	boom := errors.New("deliberate failure")

	err := WithinTx(context.Background(), conn, func(ctx context.Context, tx DBTX) error {
		if err := insertState(ctx, tx, "k2"); err != nil {
			return err
		}
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countState(t, conn, "k2"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	conn := openTestDB(t)

	assert.Panics(t, func() {
		_ = WithinTx(context.Background(), conn, func(ctx context.Context, tx DBTX) error {
			_ = insertState(ctx, tx, "k3")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countState(t, conn, "k3"))
}

func TestWithinTx_CanceledContext(t *testing.T) {
	conn := openTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithinTx(ctx, conn, func(ctx context.Context, tx DBTX) error {
		return insertState(ctx, tx, "k4")
	})

	require.Error(t, err)
	assert.Equal(t, 0, countState(t, conn, "k4"))
}
