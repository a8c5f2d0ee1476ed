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

// RepoRepository implements domain.RepoRepository using SQLite.
type RepoRepository struct {
	db *sql.DB
}

// NewRepoRepository creates a new SQLite-backed RepoRepository.
func NewRepoRepository(db *DB) *RepoRepository {
	return &RepoRepository{db: db.SqlDB}
}

func (r *RepoRepository) Create(ctx context.Context, repo *domain.Repo) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO repos (id, title, description, starter, key_artwork, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		repo.ID, repo.Title, repo.Description, repo.Starter,
		repo.KeyArtwork, repo.Timestamp.UnixMilli(),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert repo: %w", err)
	}
	return nil
}

func (r *RepoRepository) GetByID(ctx context.Context, id string) (*domain.Repo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, starter, key_artwork, timestamp
		 FROM repos WHERE id = ?`, id)
	repo, err := scanRepo(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query repo by id: %w", err)
	}
	return repo, nil
}

func (r *RepoRepository) ListByStarter(ctx context.Context, starter string) ([]domain.Repo, error) {
	return r.list(ctx,
		`SELECT id, title, description, starter, key_artwork, timestamp
		 FROM repos WHERE starter = ?`, starter)
}

func (r *RepoRepository) ListAfter(ctx context.Context, cursor time.Time, limit int) ([]domain.Repo, error) {
	return r.list(ctx,
		`SELECT id, title, description, starter, key_artwork, timestamp
		 FROM repos WHERE timestamp > ? ORDER BY timestamp DESC LIMIT ?`,
		cursor.UnixMilli(), limit)
}

func (r *RepoRepository) ListBefore(ctx context.Context, cursor time.Time, limit int) ([]domain.Repo, error) {
	return r.list(ctx,
		`SELECT id, title, description, starter, key_artwork, timestamp
		 FROM repos WHERE timestamp < ? ORDER BY timestamp DESC LIMIT ?`,
		cursor.UnixMilli(), limit)
}

func (r *RepoRepository) Update(ctx context.Context, id string, upd domain.RepoUpdate) (int64, error) {
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
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, id)

	result, err := r.db.ExecContext(ctx,
		"UPDATE repos SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return 0, fmt.Errorf("update repo: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}

// Delete removes the repo row only. Artworks filed under the repo are
// left in place; see the repo removal command for the product-level
// discussion.
func (r *RepoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM repos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete repo: %w", err)
	}
	return nil
}

func (r *RepoRepository) list(ctx context.Context, query string, args ...any) ([]domain.Repo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list repos: %w", err)
	}
	defer rows.Close()

	var repos []domain.Repo
	for rows.Next() {
		repo, err := scanRepo(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan repo: %w", err)
		}
		repos = append(repos, *repo)
	}
	return repos, rows.Err()
}

func scanRepo(scan func(...any) error) (*domain.Repo, error) {
	rp := &domain.Repo{}
	var ts int64
	if err := scan(&rp.ID, &rp.Title, &rp.Description, &rp.Starter, &rp.KeyArtwork, &ts); err != nil {
		return nil, err
	}
	rp.Timestamp = time.UnixMilli(ts).UTC()
	return rp, nil
}
