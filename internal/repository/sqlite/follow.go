package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/artpieces/backend/internal/domain"
)

// FollowRepository implements domain.FollowRepository using SQLite.
type FollowRepository struct {
	db *sql.DB
}

// NewFollowRepository creates a new SQLite-backed FollowRepository.
func NewFollowRepository(db *DB) *FollowRepository {
	return &FollowRepository{db: db.SqlDB}
}

func (r *FollowRepository) Follow(ctx context.Context, origin, target string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO follows (origin, target) VALUES (?, ?)", origin, target)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert follow: %w", err)
	}
	return nil
}

func (r *FollowRepository) Unfollow(ctx context.Context, origin, target string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM follows WHERE origin = ? AND target = ?", origin, target)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}

func (r *FollowRepository) CountFollowers(ctx context.Context, target string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM follows WHERE target = ?", target).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count followers: %w", err)
	}
	return count, nil
}
