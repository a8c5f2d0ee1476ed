package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/artpieces/backend/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, name, portrait, password, salt, signature)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.Email, user.Name, user.Portrait, user.Password, user.Salt, user.Signature,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT email, name, portrait, password, salt, signature
		 FROM users WHERE email = ?`, email,
	).Scan(&user.Email, &user.Name, &user.Portrait, &user.Password, &user.Salt, &user.Signature)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, email string, upd domain.UserUpdate) (int64, error) {
	var sets []string
	var args []any
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Password != nil {
		sets = append(sets, "password = ?")
		args = append(args, *upd.Password)
	}
	if upd.Salt != nil {
		sets = append(sets, "salt = ?")
		args = append(args, *upd.Salt)
	}
	if upd.Portrait != nil {
		sets = append(sets, "portrait = ?")
		args = append(args, *upd.Portrait)
	}
	if upd.Signature != nil {
		sets = append(sets, "signature = ?")
		args = append(args, *upd.Signature)
	}
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, email)

	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET "+strings.Join(sets, ", ")+" WHERE email = ?", args...)
	if err != nil {
		return 0, fmt.Errorf("update user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}
