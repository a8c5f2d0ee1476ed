package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artpieces/backend/internal/domain"
)

// LectureService handles lecture mutations.
type LectureService struct {
	auth     *AuthService
	lectures domain.LectureRepository
	stars    domain.StarRepository
}

// NewLectureService creates a new LectureService.
func NewLectureService(auth *AuthService, lectures domain.LectureRepository, stars domain.StarRepository) *LectureService {
	return &LectureService{auth: auth, lectures: lectures, stars: stars}
}

// CreateLectureParams carries a lecture creation request.
type CreateLectureParams struct {
	ID          string
	Title       string
	Description string
	Creator     string
	Password    string
	KeyPhoto    string
	Steps       string
	Timestamp   time.Time
}

// Create inserts a new lecture and returns its id.
func (s *LectureService) Create(ctx context.Context, p CreateLectureParams) (string, error) {
	ok, err := s.auth.Verify(ctx, p.Creator, p.Password)
	if err != nil {
		return "", fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return "", domain.ErrUnauthorized
	}

	lecture := &domain.Lecture{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Creator:     p.Creator,
		KeyPhoto:    p.KeyPhoto,
		Steps:       p.Steps,
		Timestamp:   p.Timestamp,
	}
	if lecture.ID == "" {
		lecture.ID = uuid.NewString()
	}
	if lecture.Steps == "" {
		lecture.Steps = "{}"
	}
	if err := s.lectures.Create(ctx, lecture); err != nil {
		return "", err
	}
	return lecture.ID, nil
}

// UpdateLectureParams carries a lecture update.
type UpdateLectureParams struct {
	ID          string
	Creator     string
	Password    string
	Title       *string
	Description *string
	Steps       *string
	KeyPhoto    *string
}

// Update modifies a lecture owned by the caller.
func (s *LectureService) Update(ctx context.Context, p UpdateLectureParams) error {
	ok, err := s.auth.Verify(ctx, p.Creator, p.Password)
	if err != nil {
		return fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}

	lecture, err := s.lectures.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if lecture.Creator != p.Creator {
		return domain.ErrForbidden
	}

	upd := domain.LectureUpdate{
		Title:       p.Title,
		Description: p.Description,
		Steps:       p.Steps,
		KeyPhoto:    p.KeyPhoto,
	}
	if upd == (domain.LectureUpdate{}) {
		return nil
	}
	_, err = s.lectures.Update(ctx, p.ID, upd)
	return err
}

// RemoveLectureParams carries a lecture removal request.
type RemoveLectureParams struct {
	ID       string
	Creator  string
	Password string
}

// Remove deletes a lecture owned by the caller, then its star edges.
// The two deletes are separate statements, not a transaction; a crash
// in between leaves orphaned edges.
func (s *LectureService) Remove(ctx context.Context, p RemoveLectureParams) error {
	ok, err := s.auth.Verify(ctx, p.Creator, p.Password)
	if err != nil {
		return fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}

	lecture, err := s.lectures.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if lecture.Creator != p.Creator {
		return domain.ErrForbidden
	}

	if err := s.lectures.Delete(ctx, p.ID); err != nil {
		return err
	}
	return s.stars.DeleteLectureStars(ctx, p.ID)
}
