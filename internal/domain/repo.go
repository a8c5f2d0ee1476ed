package domain

import (
	"context"
	"time"
)

// Repo groups artworks under a starter's account. KeyArtwork should
// reference an Artwork id but the store does not enforce it; view
// composition has to tolerate a dangling reference.
type Repo struct {
	ID          string
	Title       string
	Description string
	Starter     string
	KeyArtwork  string
	Timestamp   time.Time
}

// RepoUpdate lists the mutable repo fields. Starter and KeyArtwork
// are frozen after creation.
type RepoUpdate struct {
	Title       *string
	Description *string
}

// RepoRepository defines persistence operations for repos. ListAfter
// and ListBefore drive keyset feed pagination: both order by
// timestamp descending and cap the row count, differing only in which
// side of the cursor they select.
type RepoRepository interface {
	Create(ctx context.Context, repo *Repo) error
	GetByID(ctx context.Context, id string) (*Repo, error)
	ListByStarter(ctx context.Context, starter string) ([]Repo, error)
	ListAfter(ctx context.Context, cursor time.Time, limit int) ([]Repo, error)
	ListBefore(ctx context.Context, cursor time.Time, limit int) ([]Repo, error)
	Update(ctx context.Context, id string, upd RepoUpdate) (int64, error)
	Delete(ctx context.Context, id string) error
}
