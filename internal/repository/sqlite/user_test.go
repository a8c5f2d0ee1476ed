package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/artpieces/backend/internal/domain"
	"github.com/artpieces/backend/internal/repository/sqlite"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Email:     "alice@example.com",
		Name:      "Alice",
		Portrait:  "/img/origin/alice.png",
		Password:  "digest",
		Salt:      "salt",
		Signature: "hi",
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if *got != *user {
		t.Fatalf("got %+v, want %+v", got, user)
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Email: "dup@example.com", Name: "One", Password: "d", Salt: "s"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	err := repo.Create(ctx, &domain.User{Email: "dup@example.com", Name: "Two", Password: "d", Salt: "s"})
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Update_Partial(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Email: "bob@example.com", Name: "Bob", Password: "d", Salt: "s", Signature: "old"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "Robert"
	rows, err := repo.Update(ctx, "bob@example.com", domain.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	got, err := repo.GetByEmail(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.Name != "Robert" {
		t.Fatalf("expected updated name, got %q", got.Name)
	}
	if got.Signature != "old" {
		t.Fatalf("untouched field changed: %q", got.Signature)
	}
}

func TestUserRepository_Update_MissingRow(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	name := "Nobody"
	rows, err := repo.Update(context.Background(), "ghost@example.com", domain.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows affected, got %d", rows)
	}
}

func TestUserRepository_Update_NoFields(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	rows, err := repo.Update(context.Background(), "any@example.com", domain.UserUpdate{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows affected for empty update, got %d", rows)
	}
}
