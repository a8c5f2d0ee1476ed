package domain

import (
	"context"
	"time"
)

// Artwork is a single published piece. Creator references the owning
// user's email; BelongingRepo references the repo it was filed under,
// empty for standalone pieces. Neither reference is enforced by the
// store.
type Artwork struct {
	ID            string
	Title         string
	Description   string
	Creator       string
	KeyPhoto      string
	BelongingRepo string
	Timestamp     time.Time
}

// ArtworkUpdate lists the mutable artwork fields. Creator is frozen
// after creation.
type ArtworkUpdate struct {
	Title       *string
	Description *string
	KeyPhoto    *string
}

// ArtworkRepository defines persistence operations for artworks.
type ArtworkRepository interface {
	Create(ctx context.Context, artwork *Artwork) error
	GetByID(ctx context.Context, id string) (*Artwork, error)
	ListByCreator(ctx context.Context, creator string) ([]Artwork, error)
	ListByRepo(ctx context.Context, repoID string) ([]Artwork, error)
	CountByRepo(ctx context.Context, repoID string) (int, error)
	Update(ctx context.Context, id string, upd ArtworkUpdate) (int64, error)
	Delete(ctx context.Context, id string) error
}
