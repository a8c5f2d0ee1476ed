package service

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/artpieces/backend/internal/domain"
)

// ArtworkService handles artwork mutations. Every operation verifies
// the actor's credential first; update and removal additionally check
// that the actor matches the stored creator.
type ArtworkService struct {
	auth     *AuthService
	artworks domain.ArtworkRepository
	images   ImageStore
}

// NewArtworkService creates a new ArtworkService.
func NewArtworkService(auth *AuthService, artworks domain.ArtworkRepository, images ImageStore) *ArtworkService {
	return &ArtworkService{auth: auth, artworks: artworks, images: images}
}

// CreateArtworkParams carries an artwork creation request. A missing
// ID is filled with a generated one.
type CreateArtworkParams struct {
	ID            string
	Title         string
	Description   string
	Creator       string
	Password      string
	KeyPhoto      string
	BelongingRepo string
	Timestamp     time.Time
}

// Create inserts a new artwork and returns its id.
func (s *ArtworkService) Create(ctx context.Context, p CreateArtworkParams) (string, error) {
	ok, err := s.auth.Verify(ctx, p.Creator, p.Password)
	if err != nil {
		return "", fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return "", domain.ErrUnauthorized
	}

	artwork := &domain.Artwork{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Creator:       p.Creator,
		KeyPhoto:      p.KeyPhoto,
		BelongingRepo: p.BelongingRepo,
		Timestamp:     p.Timestamp,
	}
	if artwork.ID == "" {
		artwork.ID = uuid.NewString()
	}
	if err := s.artworks.Create(ctx, artwork); err != nil {
		return "", err
	}
	return artwork.ID, nil
}

// UpdateArtworkParams carries an artwork update. Creator names the
// acting identity and must match the stored owner.
type UpdateArtworkParams struct {
	ID          string
	Creator     string
	Password    string
	Title       *string
	Description *string
	KeyPhoto    *string
}

// Update modifies an artwork owned by the caller.
func (s *ArtworkService) Update(ctx context.Context, p UpdateArtworkParams) error {
	ok, err := s.auth.Verify(ctx, p.Creator, p.Password)
	if err != nil {
		return fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}

	artwork, err := s.artworks.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if artwork.Creator != p.Creator {
		return domain.ErrForbidden
	}

	upd := domain.ArtworkUpdate{
		Title:       p.Title,
		Description: p.Description,
		KeyPhoto:    p.KeyPhoto,
	}
	if upd == (domain.ArtworkUpdate{}) {
		return nil
	}
	_, err = s.artworks.Update(ctx, p.ID, upd)
	return err
}

// RemoveArtworkParams carries an artwork removal request.
type RemoveArtworkParams struct {
	ID       string
	Creator  string
	Password string
}

// Remove deletes an artwork owned by the caller. The key photo is
// destroyed on the image service best-effort: a failed destroy is
// logged and never blocks the database deletion.
func (s *ArtworkService) Remove(ctx context.Context, p RemoveArtworkParams) error {
	ok, err := s.auth.Verify(ctx, p.Creator, p.Password)
	if err != nil {
		return fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}

	artwork, err := s.artworks.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if artwork.Creator != p.Creator {
		return domain.ErrForbidden
	}

	if artwork.KeyPhoto != "" {
		destroyed, err := s.images.Destroy(ctx, path.Base(artwork.KeyPhoto))
		if err != nil || !destroyed {
			slog.Error("destroy image failed", "artwork", artwork.ID, "file", artwork.KeyPhoto, "error", err)
		}
	}

	return s.artworks.Delete(ctx, p.ID)
}
