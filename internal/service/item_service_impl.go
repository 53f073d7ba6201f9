package service

import (
	"context"
	"time"

	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/alexanderramin/checklist/internal/repository"
)

type itemService struct {
	items    repository.ItemRepo
	observer UseCaseObserver
}

func NewItemService(items repository.ItemRepo, observers ...UseCaseObserver) ItemService {
	return &itemService{items: items, observer: useCaseObserverOrNoop(observers)}
}

func (s *itemService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *itemService) List(ctx context.Context, checklistID string) ([]domain.Item, error) {
	if err := requireID("checklist", checklistID); err != nil {
		return nil, err
	}
	return s.items.Refresh(ctx, checklistID)
}

func (s *itemService) Create(ctx context.Context, checklistID, name string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "create-item", startedAt, err, map[string]any{"checklist_id": checklistID})
	}()

	if err = requireID("checklist", checklistID); err != nil {
		return err
	}
	if err = requireName(name); err != nil {
		return err
	}
	return s.items.Create(ctx, checklistID, name)
}

func (s *itemService) Toggle(ctx context.Context, checklistID, itemID string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "toggle-item", startedAt, err, map[string]any{"checklist_id": checklistID, "item_id": itemID})
	}()

	if err = requireID("item", itemID); err != nil {
		return err
	}
	return s.items.Toggle(ctx, checklistID, itemID)
}

func (s *itemService) Rename(ctx context.Context, checklistID, itemID, name string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "rename-item", startedAt, err, map[string]any{"checklist_id": checklistID, "item_id": itemID})
	}()

	if err = requireID("item", itemID); err != nil {
		return err
	}
	if err = requireName(name); err != nil {
		return err
	}
	return s.items.Rename(ctx, checklistID, itemID, name)
}

func (s *itemService) Delete(ctx context.Context, checklistID, itemID string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "delete-item", startedAt, err, map[string]any{"checklist_id": checklistID, "item_id": itemID})
	}()

	if err = requireID("item", itemID); err != nil {
		return err
	}
	return s.items.Delete(ctx, checklistID, itemID)
}
