package service_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/artpieces/backend/internal/domain"
	"github.com/artpieces/backend/internal/repository/sqlite"
	"github.com/artpieces/backend/internal/service"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testThumbBase = "https://img.example.com/compressed"
)

var testBase = time.UnixMilli(1_700_000_000_000).UTC()

// fakeImageStore records destroy calls and answers as configured.
type fakeImageStore struct {
	mu    sync.Mutex
	ok    bool
	err   error
	calls []string
}

func (f *fakeImageStore) Destroy(_ context.Context, filename string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, filename)
	return f.ok, f.err
}

type testEnv struct {
	db       *sqlite.DB
	thumbs   *service.Thumbnails
	images   *fakeImageStore
	auth     *service.AuthService
	views    *service.ViewService
	feeds    *service.FeedService
	users    *service.UserService
	artworks *service.ArtworkService
	repos    *service.RepoService
	lectures *service.LectureService
	social   *service.SocialService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	thumbs := service.NewThumbnails(testThumbBase)
	images := &fakeImageStore{ok: true}
	auth := service.NewAuthService(db.Users(), testJWTSecret)

	return &testEnv{
		db:       db,
		thumbs:   thumbs,
		images:   images,
		auth:     auth,
		views:    service.NewViewService(db.Users(), db.Artworks(), db.Repos(), db.Lectures(), db.Stars(), thumbs),
		feeds:    service.NewFeedService(db.Users(), db.Artworks(), db.Repos(), db.Lectures(), db.Stars(), thumbs, 6),
		users:    service.NewUserService(auth, db.Users()),
		artworks: service.NewArtworkService(auth, db.Artworks(), images),
		repos:    service.NewRepoService(auth, db.Repos()),
		lectures: service.NewLectureService(auth, db.Lectures(), db.Stars()),
		social:   service.NewSocialService(auth, db.Stars(), db.Follows()),
	}
}

func (e *testEnv) createUser(t *testing.T, email, password string) {
	t.Helper()
	_, err := e.users.Create(context.Background(), service.CreateUserParams{
		Email:    email,
		Name:     "User " + email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
}

func (e *testEnv) createArtwork(t *testing.T, id, creator, password, belongingRepo string, ts time.Time) {
	t.Helper()
	_, err := e.artworks.Create(context.Background(), service.CreateArtworkParams{
		ID:            id,
		Title:         "artwork " + id,
		Creator:       creator,
		Password:      password,
		KeyPhoto:      "/img/origin/" + id + ".png",
		BelongingRepo: belongingRepo,
		Timestamp:     ts,
	})
	if err != nil {
		t.Fatalf("create artwork %s: %v", id, err)
	}
}

func (e *testEnv) createRepo(t *testing.T, id, starter, password, keyArtwork string, ts time.Time) {
	t.Helper()
	_, err := e.repos.Create(context.Background(), service.CreateRepoParams{
		ID:         id,
		Title:      "repo " + id,
		Starter:    starter,
		Password:   password,
		KeyArtwork: keyArtwork,
		Timestamp:  ts,
	})
	if err != nil {
		t.Fatalf("create repo %s: %v", id, err)
	}
}

func (e *testEnv) createLecture(t *testing.T, id, creator, password, steps string, ts time.Time) {
	t.Helper()
	_, err := e.lectures.Create(context.Background(), service.CreateLectureParams{
		ID:        id,
		Title:     "lecture " + id,
		Creator:   creator,
		Password:  password,
		KeyPhoto:  "/img/origin/" + id + ".png",
		Steps:     steps,
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("create lecture %s: %v", id, err)
	}
}

// statusOf maps a command error to its envelope status code.
func statusOf(err error) int {
	if err == nil {
		return domain.StatusOK
	}
	return domain.Fail(err).Status
}
