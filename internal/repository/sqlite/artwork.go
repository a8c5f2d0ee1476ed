package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/artpieces/backend/internal/domain"
)

// ArtworkRepository implements domain.ArtworkRepository using SQLite.
// Timestamps are stored as unix milliseconds so the feed's keyset
// comparisons are exact.
type ArtworkRepository struct {
	db *sql.DB
}

// NewArtworkRepository creates a new SQLite-backed ArtworkRepository.
func NewArtworkRepository(db *DB) *ArtworkRepository {
	return &ArtworkRepository{db: db.SqlDB}
}

func (r *ArtworkRepository) Create(ctx context.Context, artwork *domain.Artwork) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO artworks (id, title, description, creator, key_photo, belonging_repo, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		artwork.ID, artwork.Title, artwork.Description, artwork.Creator,
		artwork.KeyPhoto, artwork.BelongingRepo, artwork.Timestamp.UnixMilli(),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert artwork: %w", err)
	}
	return nil
}

func (r *ArtworkRepository) GetByID(ctx context.Context, id string) (*domain.Artwork, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, creator, key_photo, belonging_repo, timestamp
		 FROM artworks WHERE id = ?`, id)
	artwork, err := scanArtwork(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query artwork by id: %w", err)
	}
	return artwork, nil
}

func (r *ArtworkRepository) ListByCreator(ctx context.Context, creator string) ([]domain.Artwork, error) {
	return r.list(ctx,
		`SELECT id, title, description, creator, key_photo, belonging_repo, timestamp
		 FROM artworks WHERE creator = ?`, creator)
}

func (r *ArtworkRepository) ListByRepo(ctx context.Context, repoID string) ([]domain.Artwork, error) {
	return r.list(ctx,
		`SELECT id, title, description, creator, key_photo, belonging_repo, timestamp
		 FROM artworks WHERE belonging_repo = ?`, repoID)
}

func (r *ArtworkRepository) CountByRepo(ctx context.Context, repoID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM artworks WHERE belonging_repo = ?", repoID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count artworks by repo: %w", err)
	}
	return count, nil
}

func (r *ArtworkRepository) Update(ctx context.Context, id string, upd domain.ArtworkUpdate) (int64, error) {
	var sets []string
	var args []any
	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.KeyPhoto != nil {
		sets = append(sets, "key_photo = ?")
		args = append(args, *upd.KeyPhoto)
	}
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, id)

	result, err := r.db.ExecContext(ctx,
		"UPDATE artworks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return 0, fmt.Errorf("update artwork: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}

func (r *ArtworkRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM artworks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete artwork: %w", err)
	}
	return nil
}

func (r *ArtworkRepository) list(ctx context.Context, query string, args ...any) ([]domain.Artwork, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	defer rows.Close()

	var artworks []domain.Artwork
	for rows.Next() {
		artwork, err := scanArtwork(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan artwork: %w", err)
		}
		artworks = append(artworks, *artwork)
	}
	return artworks, rows.Err()
}

func scanArtwork(scan func(...any) error) (*domain.Artwork, error) {
	a := &domain.Artwork{}
	var ts int64
	if err := scan(&a.ID, &a.Title, &a.Description, &a.Creator, &a.KeyPhoto, &a.BelongingRepo, &ts); err != nil {
		return nil, err
	}
	a.Timestamp = time.UnixMilli(ts).UTC()
	return a, nil
}
