package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/artpieces/backend/internal/domain"
	"github.com/artpieces/backend/internal/service"
)

func TestViewService_Artwork(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice@example.com", "pw")
	env.createArtwork(t, "w1", "alice@example.com", "pw", "", testBase)

	view, err := env.views.Artwork(ctx, "w1")
	if err != nil {
		t.Fatalf("Artwork: %v", err)
	}
	if view.ID != "w1" || view.Creator != "alice@example.com" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.CompressedKeyPhoto != testThumbBase+"/w1.png" {
		t.Fatalf("unexpected thumbnail: %s", view.CompressedKeyPhoto)
	}
}

func TestViewService_Artwork_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.views.Artwork(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestViewService_Repo_AppendsKeyArtwork(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice@example.com", "pw")
	// The key artwork itself belongs to the repo: the composed list
	// carries it twice, once from the belonging set and once appended.
	env.createArtwork(t, "key", "alice@example.com", "pw", "r1", testBase)
	env.createArtwork(t, "other", "alice@example.com", "pw", "r1", testBase.Add(time.Minute))
	env.createRepo(t, "r1", "alice@example.com", "pw", "key", testBase)

	view, err := env.views.Repo(ctx, "r1")
	if err != nil {
		t.Fatalf("Repo: %v", err)
	}
	if view.KeyArtwork == nil || view.KeyArtwork.ID != "key" {
		t.Fatalf("expected resolved key artwork, got %+v", view.KeyArtwork)
	}
	if len(view.Artworks) != 3 {
		t.Fatalf("expected 3 entries (key twice), got %d", len(view.Artworks))
	}
	if view.Artworks[len(view.Artworks)-1].ID != "key" {
		t.Fatal("expected key artwork appended last")
	}
	if view.NumberOfArtworks != 3 {
		t.Fatalf("expected NumberOfArtworks 3, got %d", view.NumberOfArtworks)
	}
}

func TestViewService_Repo_DanglingKeyArtwork(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice@example.com", "pw")
	env.createArtwork(t, "w1", "alice@example.com", "pw", "r1", testBase)
	env.createRepo(t, "r1", "alice@example.com", "pw", "gone", testBase)

	view, err := env.views.Repo(ctx, "r1")
	if err != nil {
		t.Fatalf("Repo with dangling key artwork: %v", err)
	}
	if view.KeyArtwork != nil {
		t.Fatalf("expected nil key artwork, got %+v", view.KeyArtwork)
	}
	if len(view.Artworks) != 1 || view.NumberOfArtworks != 1 {
		t.Fatalf("expected only the belonging artwork, got %+v", view.Artworks)
	}
}

func TestViewService_Repo_StarCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice@example.com", "pw")
	env.createUser(t, "bob@example.com", "pw")
	env.createArtwork(t, "key", "alice@example.com", "pw", "", testBase)
	env.createRepo(t, "r1", "alice@example.com", "pw", "key", testBase)

	if _, err := env.social.StarRepo(ctx, "bob@example.com", "pw", "r1"); err != nil {
		t.Fatalf("StarRepo: %v", err)
	}

	view, err := env.views.Repo(ctx, "r1")
	if err != nil {
		t.Fatalf("Repo: %v", err)
	}
	if view.NumberOfStars != 1 {
		t.Fatalf("expected 1 star, got %d", view.NumberOfStars)
	}
}

func TestViewService_Lecture_StepCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice@example.com", "pw")

	tests := []struct {
		name  string
		id    string
		steps string
		want  int
	}{
		{"guide with steps", "l1", `{"guide":{"steps":[{"a":1},{"a":2},{"a":3}]}}`, 3},
		{"no guide", "l2", `{}`, 0},
		{"guide without steps", "l3", `{"guide":{}}`, 0},
		{"malformed document", "l4", `not json`, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env.createLecture(t, tc.id, "alice@example.com", "pw", tc.steps, testBase)
			view, err := env.views.Lecture(ctx, tc.id)
			if err != nil {
				t.Fatalf("Lecture: %v", err)
			}
			if view.NumberOfSteps != tc.want {
				t.Fatalf("expected %d steps, got %d", tc.want, view.NumberOfSteps)
			}
		})
	}
}

func TestViewService_User_NestedComposition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice@example.com", "pw")
	env.createUser(t, "bob@example.com", "pw")
	env.createArtwork(t, "key", "alice@example.com", "pw", "", testBase)
	env.createArtwork(t, "w1", "alice@example.com", "pw", "r1", testBase.Add(time.Minute))
	env.createRepo(t, "r1", "alice@example.com", "pw", "key", testBase)
	env.createLecture(t, "l1", "alice@example.com", "pw", `{"guide":{"steps":[{}]}}`, testBase)

	if _, err := env.social.StarLecture(ctx, "bob@example.com", "pw", "l1"); err != nil {
		t.Fatalf("StarLecture: %v", err)
	}

	view, err := env.views.User(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if len(view.Artworks) != 2 {
		t.Fatalf("expected 2 artworks, got %d", len(view.Artworks))
	}
	if len(view.Repos) != 1 {
		t.Fatalf("expected 1 repo, got %d", len(view.Repos))
	}
	// Nested repos use the full composition, belonging set plus key.
	if view.Repos[0].NumberOfArtworks != 2 {
		t.Fatalf("expected nested repo with 2 artworks, got %d", view.Repos[0].NumberOfArtworks)
	}
	if len(view.Lectures) != 1 {
		t.Fatalf("expected 1 lecture, got %d", len(view.Lectures))
	}
	if view.Lectures[0].NumberOfStars != 1 || view.Lectures[0].NumberOfSteps != 1 {
		t.Fatalf("unexpected lecture annotations: %+v", view.Lectures[0])
	}
}

func TestViewService_User_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.views.User(context.Background(), "ghost@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// countingArtworks wraps an artwork repository and counts every call
// that a repo composition would issue.
type countingArtworks struct {
	domain.ArtworkRepository
	calls int
}

func (c *countingArtworks) GetByID(ctx context.Context, id string) (*domain.Artwork, error) {
	c.calls++
	return c.ArtworkRepository.GetByID(ctx, id)
}

func (c *countingArtworks) ListByRepo(ctx context.Context, repoID string) ([]domain.Artwork, error) {
	c.calls++
	return c.ArtworkRepository.ListByRepo(ctx, repoID)
}

type countingStars struct {
	domain.StarRepository
	calls int
}

func (c *countingStars) CountRepoStars(ctx context.Context, repoID string) (int, error) {
	c.calls++
	return c.StarRepository.CountRepoStars(ctx, repoID)
}

func TestViewService_Repo_NotFoundShortCircuits(t *testing.T) {
	env := newTestEnv(t)

	artworks := &countingArtworks{ArtworkRepository: env.db.Artworks()}
	stars := &countingStars{StarRepository: env.db.Stars()}
	views := service.NewViewService(env.db.Users(), artworks, env.db.Repos(), env.db.Lectures(), stars, env.thumbs)

	_, err := views.Repo(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if artworks.calls != 0 || stars.calls != 0 {
		t.Fatalf("expected no dependent fetches after missing root, got %d artwork and %d star calls",
			artworks.calls, stars.calls)
	}
}

func TestViewService_User_PortraitThumbnail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Create(ctx, service.CreateUserParams{
		Email:    "carol@example.com",
		Name:     "Carol",
		Password: "pw",
		Portrait: "/img/origin/carol.jpg",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	view, err := env.views.User(ctx, "carol@example.com")
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if view.CompressedPortrait != testThumbBase+"/carol.jpg" {
		t.Fatalf("unexpected portrait thumbnail: %s", view.CompressedPortrait)
	}

	// A user without a portrait gets no thumbnail either.
	env.createUser(t, "dave@example.com", "pw")
	view, err = env.views.User(ctx, "dave@example.com")
	if err != nil {
		t.Fatalf("User without portrait: %v", err)
	}
	if view.CompressedPortrait != "" {
		t.Fatalf("expected empty portrait thumbnail, got %s", view.CompressedPortrait)
	}
}
