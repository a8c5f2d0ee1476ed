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

// LectureRepository implements domain.LectureRepository using SQLite.
type LectureRepository struct {
	db *sql.DB
}

// NewLectureRepository creates a new SQLite-backed LectureRepository.
func NewLectureRepository(db *DB) *LectureRepository {
	return &LectureRepository{db: db.SqlDB}
}

func (r *LectureRepository) Create(ctx context.Context, lecture *domain.Lecture) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lectures (id, title, description, creator, key_photo, steps, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		lecture.ID, lecture.Title, lecture.Description, lecture.Creator,
		lecture.KeyPhoto, lecture.Steps, lecture.Timestamp.UnixMilli(),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lecture: %w", err)
	}
	return nil
}

func (r *LectureRepository) GetByID(ctx context.Context, id string) (*domain.Lecture, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, creator, key_photo, steps, timestamp
		 FROM lectures WHERE id = ?`, id)
	lecture, err := scanLecture(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query lecture by id: %w", err)
	}
	return lecture, nil
}

func (r *LectureRepository) ListByCreator(ctx context.Context, creator string) ([]domain.Lecture, error) {
	return r.list(ctx,
		`SELECT id, title, description, creator, key_photo, steps, timestamp
		 FROM lectures WHERE creator = ?`, creator)
}

func (r *LectureRepository) ListAfter(ctx context.Context, cursor time.Time, limit int) ([]domain.Lecture, error) {
	return r.list(ctx,
		`SELECT id, title, description, creator, key_photo, steps, timestamp
		 FROM lectures WHERE timestamp > ? ORDER BY timestamp DESC LIMIT ?`,
		cursor.UnixMilli(), limit)
}

func (r *LectureRepository) ListBefore(ctx context.Context, cursor time.Time, limit int) ([]domain.Lecture, error) {
	return r.list(ctx,
		`SELECT id, title, description, creator, key_photo, steps, timestamp
		 FROM lectures WHERE timestamp < ? ORDER BY timestamp DESC LIMIT ?`,
		cursor.UnixMilli(), limit)
}

func (r *LectureRepository) Update(ctx context.Context, id string, upd domain.LectureUpdate) (int64, error) {
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
	if upd.Steps != nil {
		sets = append(sets, "steps = ?")
		args = append(args, *upd.Steps)
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
		"UPDATE lectures SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return 0, fmt.Errorf("update lecture: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}

func (r *LectureRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM lectures WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete lecture: %w", err)
	}
	return nil
}

func (r *LectureRepository) list(ctx context.Context, query string, args ...any) ([]domain.Lecture, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lectures: %w", err)
	}
	defer rows.Close()

	var lectures []domain.Lecture
	for rows.Next() {
		lecture, err := scanLecture(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan lecture: %w", err)
		}
		lectures = append(lectures, *lecture)
	}
	return lectures, rows.Err()
}

func scanLecture(scan func(...any) error) (*domain.Lecture, error) {
	l := &domain.Lecture{}
	var ts int64
	if err := scan(&l.ID, &l.Title, &l.Description, &l.Creator, &l.KeyPhoto, &l.Steps, &ts); err != nil {
		return nil, err
	}
	l.Timestamp = time.UnixMilli(ts).UTC()
	return l, nil
}
