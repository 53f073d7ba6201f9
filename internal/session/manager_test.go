package session

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/checklist/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLiteStore(database)
}

type failingStore struct {
	Store
	err error
}

func (f failingStore) Save(context.Context, string) error { return f.err }
func (f failingStore) Clear(context.Context) error { return f.err }

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save(ctx, "abc"))
	require.NoError(t, store.Save(ctx, "def"))

	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "def", token)

	require.NoError(t, store.Clear(ctx))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSQLiteStore_ClearWithoutTokenIsNoop(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Clear(context.Background()))
}

func TestNewManager_RestoresPersistedToken(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "persisted"))

	m, err := NewManager(ctx, store)
	require.NoError(t, err)

	assert.True(t, m.Current().Active())
	token, err := m.Token()
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)
}

func TestManager_NoSession(t *testing.T) {
	m, err := NewManager(context.Background(), newTestStore(t))
	require.NoError(t, err)

	assert.False(t, m.Current().Active())
	_, err = m.Token()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_BeginAndEnd(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	m, err := NewManager(ctx, store)
	require.NoError(t, err)

	require.NoError(t, m.Begin(ctx, "Bearer  tok-1 "))
	assert.Equal(t, "tok-1", m.Current().Token)
	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", stored)

	require.NoError(t, m.End(ctx))
	assert.False(t, m.Current().Active())
	stored, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestManager_BeginRejectsEmptyToken(t *testing.T) {
	m, err := NewManager(context.Background(), newTestStore(t))
	require.NoError(t, err)

	assert.Error(t, m.Begin(context.Background(), "   "))
	assert.False(t, m.Current().Active())
}

func TestManager_BeginKeepsOldSessionWhenStoreFails(t *testing.T) {
	ctx := context.Background()
	base := newTestStore(t)
	require.NoError(t, base.Save(ctx, "old"))

	m, err := NewManager(ctx, failingStore{Store: base, err: errors.New("disk full")})
	require.NoError(t, err)

	err = m.Begin(ctx, "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "old", m.Current().Token)
}
