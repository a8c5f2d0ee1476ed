package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artpieces/backend/internal/domain"
)

// RepoService handles repo mutations.
type RepoService struct {
	auth  *AuthService
	repos domain.RepoRepository
}

// NewRepoService creates a new RepoService.
func NewRepoService(auth *AuthService, repos domain.RepoRepository) *RepoService {
	return &RepoService{auth: auth, repos: repos}
}

// CreateRepoParams carries a repo creation request.
type CreateRepoParams struct {
	ID          string
	Title       string
	Description string
	Starter     string
	Password    string
	KeyArtwork  string
	Timestamp   time.Time
}

// Create inserts a new repo and returns its id.
func (s *RepoService) Create(ctx context.Context, p CreateRepoParams) (string, error) {
	ok, err := s.auth.Verify(ctx, p.Starter, p.Password)
	if err != nil {
		return "", fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return "", domain.ErrUnauthorized
	}

	repo := &domain.Repo{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Starter:     p.Starter,
		KeyArtwork:  p.KeyArtwork,
		Timestamp:   p.Timestamp,
	}
	if repo.ID == "" {
		repo.ID = uuid.NewString()
	}
	if err := s.repos.Create(ctx, repo); err != nil {
		return "", err
	}
	return repo.ID, nil
}

// UpdateRepoParams carries a repo update. Only title and description
// are mutable.
type UpdateRepoParams struct {
	ID          string
	Starter     string
	Password    string
	Title       *string
	Description *string
}

// Update modifies a repo owned by the caller.
func (s *RepoService) Update(ctx context.Context, p UpdateRepoParams) error {
	ok, err := s.auth.Verify(ctx, p.Starter, p.Password)
	if err != nil {
		return fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}

	repo, err := s.repos.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if repo.Starter != p.Starter {
		return domain.ErrForbidden
	}

	upd := domain.RepoUpdate{
		Title:       p.Title,
		Description: p.Description,
	}
	if upd == (domain.RepoUpdate{}) {
		return nil
	}
	_, err = s.repos.Update(ctx, p.ID, upd)
	return err
}

// RemoveRepoParams carries a repo removal request.
type RemoveRepoParams struct {
	ID       string
	Starter  string
	Password string
}

// Remove deletes a repo owned by the caller. Artworks filed under the
// repo stay in the store with their belonging reference intact; only
// the grouping disappears.
func (s *RepoService) Remove(ctx context.Context, p RemoveRepoParams) error {
	ok, err := s.auth.Verify(ctx, p.Starter, p.Password)
	if err != nil {
		return fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}

	repo, err := s.repos.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if repo.Starter != p.Starter {
		return domain.ErrForbidden
	}

	return s.repos.Delete(ctx, p.ID)
}
