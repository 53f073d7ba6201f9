package repository

import (
	"context"

	"github.com/alexanderramin/checklist/internal/domain"
)

// TokenSource yields the bearer token of the active session.
// *session.Manager satisfies it.
type TokenSource interface {
	Token() (string, error)
}

// ChecklistRepo is the client's view of the remote checklist collection.
// Refresh always goes to the API; there is no local copy to go stale.
type ChecklistRepo interface {
	Refresh(ctx context.Context) ([]domain.Checklist, error)
	Create(ctx context.Context, name string) error
	Delete(ctx context.Context, id string) error
}

// ItemRepo is the client's view of the items of remote checklists.
type ItemRepo interface {
	Refresh(ctx context.Context, checklistID string) ([]domain.Item, error)
	Create(ctx context.Context, checklistID, name string) error
	Toggle(ctx context.Context, checklistID, itemID string) error
	Rename(ctx context.Context, checklistID, itemID, name string) error
	Delete(ctx context.Context, checklistID, itemID string) error
}
