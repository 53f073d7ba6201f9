package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/checklist/internal/api"
)

// Sessions is the part of session.Manager the auth use cases drive.
type Sessions interface {
	Begin(ctx context.Context, token string) error
	End(ctx context.Context) error
}

type authService struct {
	client   api.Client
	sessions Sessions
	observer UseCaseObserver
}

func NewAuthService(client api.Client, sessions Sessions, observers ...UseCaseObserver) AuthService {
	return &authService{
		client:   client,
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *authService) Login(ctx context.Context, creds api.Credentials) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "login",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"username": creds.Username},
		})
	}()

	token, err := s.client.Login(ctx, creds)
	if err != nil {
		return err
	}
	if err = s.sessions.Begin(ctx, token); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

func (s *authService) Register(ctx context.Context, reg api.Registration) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "register",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"username": reg.Username},
		})
	}()
	return s.client.Register(ctx, reg)
}

func (s *authService) Logout(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "logout",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()
	return s.sessions.End(ctx)
}
