package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/artpieces/backend/internal/domain"
)

// ViewService assembles rich single-entity views: storage rows plus
// derived thumbnails, recomputed counts, and nested entities. Counts
// are never stored, always recomputed here from the edge sets and the
// step document.
type ViewService struct {
	users    domain.UserRepository
	artworks domain.ArtworkRepository
	repos    domain.RepoRepository
	lectures domain.LectureRepository
	stars    domain.StarRepository
	thumbs   *Thumbnails
}

// NewViewService creates a new ViewService.
func NewViewService(
	users domain.UserRepository,
	artworks domain.ArtworkRepository,
	repos domain.RepoRepository,
	lectures domain.LectureRepository,
	stars domain.StarRepository,
	thumbs *Thumbnails,
) *ViewService {
	return &ViewService{
		users:    users,
		artworks: artworks,
		repos:    repos,
		lectures: lectures,
		stars:    stars,
		thumbs:   thumbs,
	}
}

// ArtworkView is an artwork row with its derived thumbnail URL.
type ArtworkView struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Creator            string    `json:"creator"`
	Timestamp          time.Time `json:"timestamp"`
	BelongingRepo      string    `json:"belongingRepo,omitempty"`
	KeyPhoto           string    `json:"keyPhoto"`
	CompressedKeyPhoto string    `json:"compressedKeyPhoto"`
}

// RepoView is a repo with its resolved key artwork, its artwork list,
// and recomputed counts. Artworks contains every piece filed under the
// repo with the key artwork appended at the end, even when it already
// belongs to the repo; clients rely on that ordering.
type RepoView struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Starter          string        `json:"starter"`
	Timestamp        time.Time     `json:"timestamp"`
	KeyArtwork       *ArtworkView  `json:"keyArtwork"`
	Artworks         []ArtworkView `json:"artworks"`
	NumberOfArtworks int           `json:"numberOfArtworks"`
	NumberOfStars    int           `json:"numberOfStars"`
}

// LectureView is a lecture with derived step and star counts.
type LectureView struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Creator            string    `json:"creator"`
	Steps              string    `json:"steps"`
	Timestamp          time.Time `json:"timestamp"`
	KeyPhoto           string    `json:"keyPhoto,omitempty"`
	CompressedKeyPhoto string    `json:"compressedKeyPhoto,omitempty"`
	NumberOfSteps      int       `json:"numberOfSteps"`
	NumberOfStars      int       `json:"numberOfStars"`
}

// UserView is a user profile with every owned artwork, repo, and
// lecture nested inside, each fully composed.
type UserView struct {
	Email              string        `json:"email"`
	Name               string        `json:"name"`
	Portrait           string        `json:"portrait,omitempty"`
	CompressedPortrait string        `json:"compressedPortrait,omitempty"`
	Signature          string        `json:"signature"`
	Artworks           []ArtworkView `json:"artworks"`
	Repos              []RepoView    `json:"repos"`
	Lectures           []LectureView `json:"lectures"`
}

// Artwork returns the composed view of one artwork, or ErrNotFound.
func (s *ViewService) Artwork(ctx context.Context, id string) (*ArtworkView, error) {
	artwork, err := s.artworks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.artworkView(artwork)
	return &view, nil
}

// Repo returns the composed view of one repo, or ErrNotFound. A
// missing root short-circuits before any dependent fetch.
func (s *ViewService) Repo(ctx context.Context, id string) (*RepoView, error) {
	repo, err := s.repos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.composeRepo(ctx, repo)
}

// Lecture returns the composed view of one lecture, or ErrNotFound.
func (s *ViewService) Lecture(ctx context.Context, id string) (*LectureView, error) {
	lecture, err := s.lectures.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.composeLecture(ctx, lecture)
}

// User returns the composed profile view of one user, or ErrNotFound.
func (s *ViewService) User(ctx context.Context, email string) (*UserView, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	view := &UserView{
		Email:              user.Email,
		Name:               user.Name,
		Portrait:           user.Portrait,
		CompressedPortrait: s.thumbs.Resolve(user.Portrait),
		Signature:          user.Signature,
		Artworks:           []ArtworkView{},
		Repos:              []RepoView{},
		Lectures:           []LectureView{},
	}

	artworks, err := s.artworks.ListByCreator(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	for _, a := range artworks {
		view.Artworks = append(view.Artworks, s.artworkView(&a))
	}

	repos, err := s.repos.ListByStarter(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list repos: %w", err)
	}
	for _, r := range repos {
		composed, err := s.composeRepo(ctx, &r)
		if err != nil {
			return nil, err
		}
		view.Repos = append(view.Repos, *composed)
	}

	lectures, err := s.lectures.ListByCreator(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list lectures: %w", err)
	}
	for _, l := range lectures {
		composed, err := s.composeLecture(ctx, &l)
		if err != nil {
			return nil, err
		}
		view.Lectures = append(view.Lectures, *composed)
	}

	return view, nil
}

func (s *ViewService) composeRepo(ctx context.Context, repo *domain.Repo) (*RepoView, error) {
	view := &RepoView{
		ID:          repo.ID,
		Title:       repo.Title,
		Description: repo.Description,
		Starter:     repo.Starter,
		Timestamp:   repo.Timestamp,
		Artworks:    []ArtworkView{},
	}

	// A dangling key artwork is a data-integrity problem, not a reason
	// to fail the whole view.
	key, err := s.artworks.GetByID(ctx, repo.KeyArtwork)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		slog.Warn("repo key artwork missing", "repo", repo.ID, "artwork", repo.KeyArtwork)
	case err != nil:
		return nil, fmt.Errorf("resolve key artwork: %w", err)
	default:
		kv := s.artworkView(key)
		view.KeyArtwork = &kv
	}

	belonging, err := s.artworks.ListByRepo(ctx, repo.ID)
	if err != nil {
		return nil, fmt.Errorf("list repo artworks: %w", err)
	}
	for _, a := range belonging {
		view.Artworks = append(view.Artworks, s.artworkView(&a))
	}
	if view.KeyArtwork != nil {
		view.Artworks = append(view.Artworks, *view.KeyArtwork)
	}
	view.NumberOfArtworks = len(view.Artworks)

	stars, err := s.stars.CountRepoStars(ctx, repo.ID)
	if err != nil {
		return nil, fmt.Errorf("count repo stars: %w", err)
	}
	view.NumberOfStars = stars

	return view, nil
}

func (s *ViewService) composeLecture(ctx context.Context, lecture *domain.Lecture) (*LectureView, error) {
	stars, err := s.stars.CountLectureStars(ctx, lecture.ID)
	if err != nil {
		return nil, fmt.Errorf("count lecture stars: %w", err)
	}

	return &LectureView{
		ID:                 lecture.ID,
		Title:              lecture.Title,
		Description:        lecture.Description,
		Creator:            lecture.Creator,
		Steps:              lecture.Steps,
		Timestamp:          lecture.Timestamp,
		KeyPhoto:           lecture.KeyPhoto,
		CompressedKeyPhoto: s.thumbs.Resolve(lecture.KeyPhoto),
		NumberOfSteps:      CountSteps(lecture.Steps),
		NumberOfStars:      stars,
	}, nil
}

func (s *ViewService) artworkView(a *domain.Artwork) ArtworkView {
	return ArtworkView{
		ID:                 a.ID,
		Title:              a.Title,
		Description:        a.Description,
		Creator:            a.Creator,
		Timestamp:          a.Timestamp,
		BelongingRepo:      a.BelongingRepo,
		KeyPhoto:           a.KeyPhoto,
		CompressedKeyPhoto: s.thumbs.Resolve(a.KeyPhoto),
	}
}

// CountSteps derives the step count from a serialized step document.
// Documents without a guide, and documents that fail to parse, count
// as zero.
func CountSteps(doc string) int {
	var parsed struct {
		Guide *struct {
			Steps []json.RawMessage `json:"steps"`
		} `json:"guide"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		return 0
	}
	if parsed.Guide == nil {
		return 0
	}
	return len(parsed.Guide.Steps)
}
