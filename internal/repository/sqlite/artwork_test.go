package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/artpieces/backend/internal/domain"
	"github.com/artpieces/backend/internal/repository/sqlite"
)

var testBase = time.UnixMilli(1_700_000_000_000).UTC()

func seedArtwork(t *testing.T, repo *sqlite.ArtworkRepository, id, creator, belongingRepo string, ts time.Time) *domain.Artwork {
	t.Helper()
	a := &domain.Artwork{
		ID:            id,
		Title:         "title " + id,
		Description:   "desc",
		Creator:       creator,
		KeyPhoto:      "/img/origin/" + id + ".png",
		BelongingRepo: belongingRepo,
		Timestamp:     ts,
	}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("seed artwork %s: %v", id, err)
	}
	return a
}

func TestArtworkRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewArtworkRepository(db)
	ctx := context.Background()

	want := seedArtwork(t, repo, "w1", "alice@example.com", "", testBase)

	got, err := repo.GetByID(ctx, "w1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *got != *want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestArtworkRepository_Create_DuplicateID(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewArtworkRepository(db)

	seedArtwork(t, repo, "w1", "alice@example.com", "", testBase)

	err := repo.Create(context.Background(), &domain.Artwork{
		ID: "w1", Title: "again", Creator: "alice@example.com", Timestamp: testBase,
	})
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestArtworkRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewArtworkRepository(db)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestArtworkRepository_ListAndCountByRepo(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewArtworkRepository(db)
	ctx := context.Background()

	seedArtwork(t, repo, "w1", "alice@example.com", "r1", testBase)
	seedArtwork(t, repo, "w2", "alice@example.com", "r1", testBase.Add(time.Minute))
	seedArtwork(t, repo, "w3", "alice@example.com", "r2", testBase)
	seedArtwork(t, repo, "w4", "alice@example.com", "", testBase)

	list, err := repo.ListByRepo(ctx, "r1")
	if err != nil {
		t.Fatalf("ListByRepo: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 artworks in r1, got %d", len(list))
	}

	count, err := repo.CountByRepo(ctx, "r1")
	if err != nil {
		t.Fatalf("CountByRepo: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}
}

func TestArtworkRepository_ListByCreator(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewArtworkRepository(db)

	seedArtwork(t, repo, "w1", "alice@example.com", "", testBase)
	seedArtwork(t, repo, "w2", "bob@example.com", "", testBase)

	list, err := repo.ListByCreator(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("ListByCreator: %v", err)
	}
	if len(list) != 1 || list[0].ID != "w1" {
		t.Fatalf("expected only w1, got %+v", list)
	}
}

func TestArtworkRepository_Update_Partial(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewArtworkRepository(db)
	ctx := context.Background()

	seedArtwork(t, repo, "w1", "alice@example.com", "", testBase)

	title := "new title"
	rows, err := repo.Update(ctx, "w1", domain.ArtworkUpdate{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	got, err := repo.GetByID(ctx, "w1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "new title" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}
	if got.Description != "desc" {
		t.Fatalf("untouched field changed: %q", got.Description)
	}
}

func TestArtworkRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewArtworkRepository(db)
	ctx := context.Background()

	seedArtwork(t, repo, "w1", "alice@example.com", "", testBase)

	if err := repo.Delete(ctx, "w1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "w1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
