package service

import (
	"context"
	"fmt"

	"github.com/artpieces/backend/internal/domain"
)

// UserService handles account creation and profile updates.
type UserService struct {
	auth  *AuthService
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(auth *AuthService, users domain.UserRepository) *UserService {
	return &UserService{auth: auth, users: users}
}

// CreateUserParams carries the fields of a registration request.
type CreateUserParams struct {
	Email     string
	Name      string
	Password  string
	Portrait  string
	Signature string
}

// Create registers a new account and returns its email. The plaintext
// password is salted and digested before it touches the store. An
// existing email surfaces as ErrDuplicate.
func (s *UserService) Create(ctx context.Context, p CreateUserParams) (string, error) {
	if p.Email == "" || p.Password == "" {
		return "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	salt, err := NewSalt()
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Email:     p.Email,
		Name:      p.Name,
		Portrait:  p.Portrait,
		Password:  Digest(p.Password, salt),
		Salt:      salt,
		Signature: p.Signature,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}
	return user.Email, nil
}

// UpdateUserParams carries a profile update. Password is the current
// credential proving the caller's identity; nil optional fields leave
// the stored values untouched.
type UpdateUserParams struct {
	Email       string
	Password    string
	Name        *string
	NewPassword *string
	Portrait    *string
	Signature   *string
}

// Update modifies the caller's own profile. A new password gets a
// fresh salt and digest.
func (s *UserService) Update(ctx context.Context, p UpdateUserParams) error {
	ok, err := s.auth.Verify(ctx, p.Email, p.Password)
	if err != nil {
		return fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}

	upd := domain.UserUpdate{
		Name:      p.Name,
		Portrait:  p.Portrait,
		Signature: p.Signature,
	}
	if p.NewPassword != nil {
		salt, err := NewSalt()
		if err != nil {
			return err
		}
		digest := Digest(*p.NewPassword, salt)
		upd.Password = &digest
		upd.Salt = &salt
	}
	if upd == (domain.UserUpdate{}) {
		return nil
	}

	rows, err := s.users.Update(ctx, p.Email, upd)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
