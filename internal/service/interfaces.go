package service

import (
	"context"

	"github.com/alexanderramin/checklist/internal/api"
	"github.com/alexanderramin/checklist/internal/domain"
)

type AuthService interface {
	// Login exchanges credentials for a token and begins a session.
	// On failure the stored session is left untouched.
	Login(ctx context.Context, creds api.Credentials) error
	Register(ctx context.Context, reg api.Registration) error
	Logout(ctx context.Context) error
}

// Overview is everything the dashboard renders: the checklists in API order
// and the completion percentage of each.
type Overview struct {
	Checklists []domain.Checklist
	Progress   domain.ProgressMap
}

type ChecklistService interface {
	List(ctx context.Context) ([]domain.Checklist, error)
	Overview(ctx context.Context) (*Overview, error)
	Create(ctx context.Context, name string) error
	Delete(ctx context.Context, id string) error
}

type ItemService interface {
	List(ctx context.Context, checklistID string) ([]domain.Item, error)
	Create(ctx context.Context, checklistID, name string) error
	Toggle(ctx context.Context, checklistID, itemID string) error
	Rename(ctx context.Context, checklistID, itemID, name string) error
	Delete(ctx context.Context, checklistID, itemID string) error
}

type ProgressService interface {
	// Measure fetches the items of every checklist with bounded concurrency.
	// A checklist whose fetch fails stays absent from the map and reads as 0.
	// The only error returned is the context's.
	Measure(ctx context.Context, checklists []domain.Checklist) (domain.ProgressMap, error)
}
