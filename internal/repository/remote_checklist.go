package repository

import (
	"context"

	"github.com/alexanderramin/checklist/internal/api"
	"github.com/alexanderramin/checklist/internal/domain"
)

// RemoteChecklistRepo implements ChecklistRepo on top of the API client.
type RemoteChecklistRepo struct {
	client api.Client
	tokens TokenSource
}

// NewRemoteChecklistRepo creates a new RemoteChecklistRepo.
func NewRemoteChecklistRepo(client api.Client, tokens TokenSource) *RemoteChecklistRepo {
	return &RemoteChecklistRepo{client: client, tokens: tokens}
}

func (r *RemoteChecklistRepo) Refresh(ctx context.Context) ([]domain.Checklist, error) {
	token, err := bearer(r.tokens)
	if err != nil {
		return nil, err
	}
	return r.client.ListChecklists(ctx, token)
}

func (r *RemoteChecklistRepo) Create(ctx context.Context, name string) error {
	token, err := bearer(r.tokens)
	if err != nil {
		return err
	}
	return r.client.CreateChecklist(ctx, token, name)
}

func (r *RemoteChecklistRepo) Delete(ctx context.Context, id string) error {
	token, err := bearer(r.tokens)
	if err != nil {
		return err
	}
	return r.client.DeleteChecklist(ctx, token, id)
}
