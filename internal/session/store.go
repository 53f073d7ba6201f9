package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/checklist/internal/db"
)

// TokenKey is the fixed client_state key the bearer token lives under.
const TokenKey = "token"

// Store persists the bearer token between runs.
type Store interface {
	// Load returns the stored token, or "" when none is stored.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// SQLiteStore implements Store on the client_state table.
type SQLiteStore struct {
	db db.DBTX
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(conn db.DBTX) *SQLiteStore {
	return &SQLiteStore{db: conn}
}

func (s *SQLiteStore) Load(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM client_state WHERE key = ?`, TokenKey).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("loading token: %w", err)
	}
	return token, nil
}

func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO client_state (key, value, updated_at) VALUES (?, ?, ?)`,
		TokenKey, token, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM client_state WHERE key = ?`, TokenKey); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	return nil
}
