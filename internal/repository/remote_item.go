package repository

import (
	"context"

	"github.com/alexanderramin/checklist/internal/api"
	"github.com/alexanderramin/checklist/internal/domain"
)

// RemoteItemRepo implements ItemRepo on top of the API client.
type RemoteItemRepo struct {
	client api.Client
	tokens TokenSource
}

// NewRemoteItemRepo creates a new RemoteItemRepo.
func NewRemoteItemRepo(client api.Client, tokens TokenSource) *RemoteItemRepo {
	return &RemoteItemRepo{client: client, tokens: tokens}
}

func (r *RemoteItemRepo) Refresh(ctx context.Context, checklistID string) ([]domain.Item, error) {
	token, err := bearer(r.tokens)
	if err != nil {
		return nil, err
	}
	return r.client.ListItems(ctx, token, checklistID)
}

func (r *RemoteItemRepo) Create(ctx context.Context, checklistID, name string) error {
	token, err := bearer(r.tokens)
	if err != nil {
		return err
	}
	return r.client.CreateItem(ctx, token, checklistID, name)
}

func (r *RemoteItemRepo) Toggle(ctx context.Context, checklistID, itemID string) error {
	token, err := bearer(r.tokens)
	if err != nil {
		return err
	}
	return r.client.ToggleItem(ctx, token, checklistID, itemID)
}

func (r *RemoteItemRepo) Rename(ctx context.Context, checklistID, itemID, name string) error {
	token, err := bearer(r.tokens)
	if err != nil {
		return err
	}
	return r.client.RenameItem(ctx, token, checklistID, itemID, name)
}

func (r *RemoteItemRepo) Delete(ctx context.Context, checklistID, itemID string) error {
	token, err := bearer(r.tokens)
	if err != nil {
		return err
	}
	return r.client.DeleteItem(ctx, token, checklistID, itemID)
}
