package domain

import "context"

// User is a registered account. Email is the identity key; Password
// holds the hex digest of the plaintext concatenated with Salt, never
// the plaintext itself. Portrait is the stored original image path,
// empty when the user has none.
type User struct {
	Email     string
	Name      string
	Portrait  string
	Password  string
	Salt      string
	Signature string
}

// UserUpdate lists the mutable user fields. Nil pointers leave the
// stored value untouched. Email is the frozen identity and has no
// slot here.
type UserUpdate struct {
	Name      *string
	Password  *string
	Salt      *string
	Portrait  *string
	Signature *string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, email string, upd UserUpdate) (int64, error)
}
