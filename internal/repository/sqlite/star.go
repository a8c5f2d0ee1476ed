package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/artpieces/backend/internal/domain"
)

// StarRepository implements domain.StarRepository using SQLite. The
// UNIQUE(user, target) constraint on both edge tables is what makes a
// duplicate star surface as domain.ErrDuplicate.
type StarRepository struct {
	db *sql.DB
}

// NewStarRepository creates a new SQLite-backed StarRepository.
func NewStarRepository(db *DB) *StarRepository {
	return &StarRepository{db: db.SqlDB}
}

func (r *StarRepository) StarRepo(ctx context.Context, user, repoID string) error {
	return r.star(ctx, "INSERT INTO repo_stars (user, repo) VALUES (?, ?)", user, repoID)
}

func (r *StarRepository) UnstarRepo(ctx context.Context, user, repoID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM repo_stars WHERE user = ? AND repo = ?", user, repoID)
	if err != nil {
		return fmt.Errorf("unstar repo: %w", err)
	}
	return nil
}

func (r *StarRepository) CountRepoStars(ctx context.Context, repoID string) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM repo_stars WHERE repo = ?", repoID)
}

func (r *StarRepository) StarLecture(ctx context.Context, user, lectureID string) error {
	return r.star(ctx, "INSERT INTO lecture_stars (user, lecture) VALUES (?, ?)", user, lectureID)
}

func (r *StarRepository) UnstarLecture(ctx context.Context, user, lectureID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM lecture_stars WHERE user = ? AND lecture = ?", user, lectureID)
	if err != nil {
		return fmt.Errorf("unstar lecture: %w", err)
	}
	return nil
}

func (r *StarRepository) CountLectureStars(ctx context.Context, lectureID string) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM lecture_stars WHERE lecture = ?", lectureID)
}

func (r *StarRepository) DeleteLectureStars(ctx context.Context, lectureID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM lecture_stars WHERE lecture = ?", lectureID)
	if err != nil {
		return fmt.Errorf("delete lecture stars: %w", err)
	}
	return nil
}

func (r *StarRepository) star(ctx context.Context, query, user, target string) error {
	_, err := r.db.ExecContext(ctx, query, user, target)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert star: %w", err)
	}
	return nil
}

func (r *StarRepository) count(ctx context.Context, query, target string) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, query, target).Scan(&count); err != nil {
		return 0, fmt.Errorf("count stars: %w", err)
	}
	return count, nil
}
