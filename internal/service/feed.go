package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/artpieces/backend/internal/domain"
)

// Direction selects which side of the feed cursor a page comes from.
type Direction string

const (
	// Newer selects rows with a timestamp strictly greater than the
	// cursor: the initial load.
	Newer Direction = "newer"
	// Older selects rows strictly below the cursor: feed extension.
	Older Direction = "older"
)

// UserSummary is the denormalized author attachment on feed items.
type UserSummary struct {
	Email              string `json:"email"`
	Name               string `json:"name"`
	Portrait           string `json:"portrait,omitempty"`
	CompressedPortrait string `json:"compressedPortrait,omitempty"`
}

// RepoFeedItem is the abbreviated repo composition used in feed pages.
// Unlike the rich view, NumberOfArtworks counts only the belonging set
// and the artwork list itself is omitted.
type RepoFeedItem struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Timestamp        time.Time    `json:"timestamp"`
	KeyArtwork       *ArtworkView `json:"keyArtwork"`
	NumberOfArtworks int          `json:"numberOfArtworks"`
	NumberOfStars    int          `json:"numberOfStars"`
	Starter          UserSummary  `json:"starter"`
}

// LectureFeedItem is the abbreviated lecture composition for feeds.
type LectureFeedItem struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Steps              string      `json:"steps"`
	Timestamp          time.Time   `json:"timestamp"`
	KeyPhoto           string      `json:"keyPhoto,omitempty"`
	CompressedKeyPhoto string      `json:"compressedKeyPhoto,omitempty"`
	NumberOfSteps      int         `json:"numberOfSteps"`
	NumberOfStars      int         `json:"numberOfStars"`
	Creator            UserSummary `json:"creator"`
}

// FeedService produces keyset-paginated pages of repos or lectures
// ordered by recency. Callers detect end-of-feed by receiving fewer
// than a full page; there is no has-more indicator.
type FeedService struct {
	users    domain.UserRepository
	artworks domain.ArtworkRepository
	repos    domain.RepoRepository
	lectures domain.LectureRepository
	stars    domain.StarRepository
	thumbs   *Thumbnails
	pageSize int
}

// NewFeedService creates a new FeedService with the given page size.
func NewFeedService(
	users domain.UserRepository,
	artworks domain.ArtworkRepository,
	repos domain.RepoRepository,
	lectures domain.LectureRepository,
	stars domain.StarRepository,
	thumbs *Thumbnails,
	pageSize int,
) *FeedService {
	return &FeedService{
		users:    users,
		artworks: artworks,
		repos:    repos,
		lectures: lectures,
		stars:    stars,
		thumbs:   thumbs,
		pageSize: pageSize,
	}
}

// Repos returns one feed page of repos on the given side of the
// cursor, newest first. Rows are composed concurrently; composition is
// read-only and per-row independent.
func (s *FeedService) Repos(ctx context.Context, cursor time.Time, dir Direction) ([]RepoFeedItem, error) {
	var rows []domain.Repo
	var err error
	if dir == Older {
		rows, err = s.repos.ListBefore(ctx, cursor, s.pageSize)
	} else {
		rows, err = s.repos.ListAfter(ctx, cursor, s.pageSize)
	}
	if err != nil {
		return nil, fmt.Errorf("list repo feed: %w", err)
	}

	items := make([]RepoFeedItem, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			item, err := s.composeRepoItem(gctx, &row)
			if err != nil {
				return err
			}
			items[i] = *item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// Lectures returns one feed page of lectures on the given side of the
// cursor, newest first.
func (s *FeedService) Lectures(ctx context.Context, cursor time.Time, dir Direction) ([]LectureFeedItem, error) {
	var rows []domain.Lecture
	var err error
	if dir == Older {
		rows, err = s.lectures.ListBefore(ctx, cursor, s.pageSize)
	} else {
		rows, err = s.lectures.ListAfter(ctx, cursor, s.pageSize)
	}
	if err != nil {
		return nil, fmt.Errorf("list lecture feed: %w", err)
	}

	items := make([]LectureFeedItem, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			item, err := s.composeLectureItem(gctx, &row)
			if err != nil {
				return err
			}
			items[i] = *item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FeedService) composeRepoItem(ctx context.Context, repo *domain.Repo) (*RepoFeedItem, error) {
	item := &RepoFeedItem{
		ID:          repo.ID,
		Title:       repo.Title,
		Description: repo.Description,
		Timestamp:   repo.Timestamp,
	}

	key, err := s.artworks.GetByID(ctx, repo.KeyArtwork)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		slog.Warn("repo key artwork missing", "repo", repo.ID, "artwork", repo.KeyArtwork)
	case err != nil:
		return nil, fmt.Errorf("resolve key artwork: %w", err)
	default:
		kv := ArtworkView{
			ID:                 key.ID,
			Title:              key.Title,
			Description:        key.Description,
			Creator:            key.Creator,
			Timestamp:          key.Timestamp,
			BelongingRepo:      key.BelongingRepo,
			KeyPhoto:           key.KeyPhoto,
			CompressedKeyPhoto: s.thumbs.Resolve(key.KeyPhoto),
		}
		item.KeyArtwork = &kv
	}

	count, err := s.artworks.CountByRepo(ctx, repo.ID)
	if err != nil {
		return nil, fmt.Errorf("count repo artworks: %w", err)
	}
	item.NumberOfArtworks = count

	stars, err := s.stars.CountRepoStars(ctx, repo.ID)
	if err != nil {
		return nil, fmt.Errorf("count repo stars: %w", err)
	}
	item.NumberOfStars = stars

	item.Starter, err = s.userSummary(ctx, repo.Starter)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FeedService) composeLectureItem(ctx context.Context, lecture *domain.Lecture) (*LectureFeedItem, error) {
	stars, err := s.stars.CountLectureStars(ctx, lecture.ID)
	if err != nil {
		return nil, fmt.Errorf("count lecture stars: %w", err)
	}

	item := &LectureFeedItem{
		ID:                 lecture.ID,
		Title:              lecture.Title,
		Description:        lecture.Description,
		Steps:              lecture.Steps,
		Timestamp:          lecture.Timestamp,
		KeyPhoto:           lecture.KeyPhoto,
		CompressedKeyPhoto: s.thumbs.Resolve(lecture.KeyPhoto),
		NumberOfSteps:      CountSteps(lecture.Steps),
		NumberOfStars:      stars,
	}

	item.Creator, err = s.userSummary(ctx, lecture.Creator)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FeedService) userSummary(ctx context.Context, email string) (UserSummary, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			slog.Warn("feed author missing", "email", email)
			return UserSummary{Email: email}, nil
		}
		return UserSummary{}, fmt.Errorf("resolve author: %w", err)
	}
	return UserSummary{
		Email:              user.Email,
		Name:               user.Name,
		Portrait:           user.Portrait,
		CompressedPortrait: s.thumbs.Resolve(user.Portrait),
	}, nil
}
