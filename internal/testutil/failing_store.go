package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/checklist/internal/session"
)

// FailingStore wraps a session.Store and injects Err into writes once
// FailWrites is set. Reads pass through normally.
type FailingStore struct {
	session.Store
	FailWrites atomic.Bool
	Err        error
}

func (s *FailingStore) Save(ctx context.Context, token string) error {
	if s.FailWrites.Load() {
		return s.Err
	}
	return s.Store.Save(ctx, token)
}

func (s *FailingStore) Clear(ctx context.Context) error {
	if s.FailWrites.Load() {
		return s.Err
	}
	return s.Store.Clear(ctx)
}
