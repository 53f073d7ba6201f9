package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNoSession is returned when an authenticated operation runs without a
// logged-in session.
var ErrNoSession = errors.New("no active session")

// Session is the authenticated state of the client: a single opaque bearer
// token. The zero value means logged out.
type Session struct {
	Token string
}

// Active reports whether the session carries a token.
func (s Session) Active() bool {
	return s.Token != ""
}

// Manager owns the session lifecycle. A session is created by Begin after a
// successful login and destroyed by End on logout. Everything else only
// reads it through Current.
type Manager struct {
	store Store

	mu      sync.RWMutex
	current Session
}

// NewManager creates a Manager and restores any session persisted by store.
func NewManager(ctx context.Context, store Store) (*Manager, error) {
	m := &Manager{store: store}
	token, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	m.current = Session{Token: normalizeToken(token)}
	return m, nil
}

// Current returns a copy of the active session.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Token returns the active bearer token or ErrNoSession.
func (m *Manager) Token() (string, error) {
	s := m.Current()
	if !s.Active() {
		return "", ErrNoSession
	}
	return s.Token, nil
}

// Begin persists token and makes it the active session. The in-memory
// session only changes once the store write succeeded.
func (m *Manager) Begin(ctx context.Context, token string) error {
	token = normalizeToken(token)
	if token == "" {
		return fmt.Errorf("begin session: empty token")
	}
	if err := m.store.Save(ctx, token); err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	m.mu.Lock()
	m.current = Session{Token: token}
	m.mu.Unlock()
	return nil
}

// End clears the persisted token and the active session.
func (m *Manager) End(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	m.mu.Lock()
	m.current = Session{}
	m.mu.Unlock()
	return nil
}

// normalizeToken trims whitespace and a leading "Bearer " scheme.
func normalizeToken(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 7 && strings.EqualFold(s[:7], "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
