package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/checklist/internal/db"
	"github.com/alexanderramin/checklist/internal/session"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestSession returns a session manager over a fresh in-memory store.
// A non-empty token starts the manager logged in.
func NewTestSession(t *testing.T, token string) *session.Manager {
	t.Helper()
	store := session.NewSQLiteStore(NewTestDB(t))
	ctx := context.Background()
	if token != "" {
		if err := store.Save(ctx, token); err != nil {
			t.Fatalf("failed to seed token: %v", err)
		}
	}
	m, err := session.NewManager(ctx, store)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return m
}
