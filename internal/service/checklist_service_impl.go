package service

import (
	"context"
	"time"

	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/alexanderramin/checklist/internal/repository"
)

type checklistService struct {
	checklists repository.ChecklistRepo
	progress   ProgressService
	observer   UseCaseObserver
}

func NewChecklistService(
	checklists repository.ChecklistRepo,
	progress ProgressService,
	observers ...UseCaseObserver,
) ChecklistService {
	return &checklistService{
		checklists: checklists,
		progress:   progress,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *checklistService) List(ctx context.Context) ([]domain.Checklist, error) {
	return s.checklists.Refresh(ctx)
}

// Overview lists the checklists, then measures each one's progress.
func (s *checklistService) Overview(ctx context.Context) (ov *Overview, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load-dashboard",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	lists, err := s.checklists.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	fields["checklists"] = len(lists)

	progress, err := s.progress.Measure(ctx, lists)
	if err != nil {
		return nil, err
	}
	return &Overview{Checklists: lists, Progress: progress}, nil
}

func (s *checklistService) Create(ctx context.Context, name string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create-checklist",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	if err = requireName(name); err != nil {
		return err
	}
	return s.checklists.Create(ctx, name)
}

func (s *checklistService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-checklist",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"checklist_id": id},
		})
	}()

	if err = requireID("checklist", id); err != nil {
		return err
	}
	return s.checklists.Delete(ctx, id)
}
