package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/alexanderramin/checklist/internal/repository"
	"golang.org/x/sync/errgroup"
)

// DefaultProgressWorkers caps concurrent item fetches when no limit is set.
const DefaultProgressWorkers = 4

type progressService struct {
	items    repository.ItemRepo
	workers  int
	observer UseCaseObserver
}

func NewProgressService(items repository.ItemRepo, workers int, observers ...UseCaseObserver) ProgressService {
	if workers <= 0 {
		workers = DefaultProgressWorkers
	}
	return &progressService{
		items:    items,
		workers:  workers,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) Measure(ctx context.Context, checklists []domain.Checklist) (domain.ProgressMap, error) {
	out := make(domain.ProgressMap, len(checklists))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, cl := range checklists {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			startedAt := time.Now().UTC()
			items, err := s.items.Refresh(gctx, cl.ID)
			s.observer.ObserveUseCase(gctx, UseCaseEvent{
				Name:      "measure-progress",
				StartedAt: startedAt,
				Duration:  time.Since(startedAt),
				Success:   err == nil,
				Err:       err,
				Fields:    map[string]any{"checklist_id": cl.ID},
			})
			if err != nil {
				// Leave this checklist unmeasured unless the whole batch is gone.
				return ctx.Err()
			}
			pct := domain.Progress(items)
			mu.Lock()
			out[cl.ID] = pct
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
