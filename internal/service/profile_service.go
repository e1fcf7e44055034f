package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	app_errors "orchestrator/backend/internal/errors"
	"orchestrator/backend/internal/model"
	"orchestrator/backend/internal/repository"
)

// ProfileService manages the singleton user profile and the unsent input
// draft. The profile is immutable after login, except for full replacement
// on logout/login.
type ProfileService struct {
	repo repository.Repository
}

func NewProfileService(repo repository.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Login creates and persists a fresh profile, replacing any previous one.
func (s *ProfileService) Login(ctx context.Context, displayName, email, avatar string) (*model.User, error) {
	if displayName == "" {
		return nil, fmt.Errorf("%w: display name must not be empty", app_errors.ErrValidation)
	}
	user := &model.User{
		ID:          uuid.NewString(),
		DisplayName: displayName,
		Email:       email,
		Avatar:      avatar,
	}
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("could not save user: %w", err)
	}
	return user, nil
}

func (s *ProfileService) Get(ctx context.Context) (*model.User, error) {
	user, err := s.repo.GetUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_errors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) Logout(ctx context.Context) error {
	return s.repo.DeleteUser(ctx)
}

func (s *ProfileService) GetDraft(ctx context.Context) (string, error) {
	return s.repo.GetDraft(ctx)
}

func (s *ProfileService) SaveDraft(ctx context.Context, text string) error {
	return s.repo.SaveDraft(ctx, text)
}
