package service

import (
	"context"
	"fmt"

	"github.com/artpieces/backend/internal/domain"
)

// SocialService handles star and follow edge toggles. Only the acting
// principal's credential is checked: the edge belongs to the actor,
// not to the target's owner. Every toggle returns the fresh edge
// count for the target.
type SocialService struct {
	auth    *AuthService
	stars   domain.StarRepository
	follows domain.FollowRepository
}

// NewSocialService creates a new SocialService.
func NewSocialService(auth *AuthService, stars domain.StarRepository, follows domain.FollowRepository) *SocialService {
	return &SocialService{auth: auth, stars: stars, follows: follows}
}

// StarRepo adds the (user, repo) star edge. A duplicate star fails
// with ErrDuplicate via the edge uniqueness constraint.
func (s *SocialService) StarRepo(ctx context.Context, user, password, repoID string) (int, error) {
	if err := s.verify(ctx, user, password); err != nil {
		return 0, err
	}
	if err := s.stars.StarRepo(ctx, user, repoID); err != nil {
		return 0, err
	}
	return s.stars.CountRepoStars(ctx, repoID)
}

// UnstarRepo removes the (user, repo) star edge. Removing an absent
// edge is a no-op.
func (s *SocialService) UnstarRepo(ctx context.Context, user, password, repoID string) (int, error) {
	if err := s.verify(ctx, user, password); err != nil {
		return 0, err
	}
	if err := s.stars.UnstarRepo(ctx, user, repoID); err != nil {
		return 0, err
	}
	return s.stars.CountRepoStars(ctx, repoID)
}

// StarLecture adds the (user, lecture) star edge.
func (s *SocialService) StarLecture(ctx context.Context, user, password, lectureID string) (int, error) {
	if err := s.verify(ctx, user, password); err != nil {
		return 0, err
	}
	if err := s.stars.StarLecture(ctx, user, lectureID); err != nil {
		return 0, err
	}
	return s.stars.CountLectureStars(ctx, lectureID)
}

// UnstarLecture removes the (user, lecture) star edge.
func (s *SocialService) UnstarLecture(ctx context.Context, user, password, lectureID string) (int, error) {
	if err := s.verify(ctx, user, password); err != nil {
		return 0, err
	}
	if err := s.stars.UnstarLecture(ctx, user, lectureID); err != nil {
		return 0, err
	}
	return s.stars.CountLectureStars(ctx, lectureID)
}

// Follow adds the (origin, target) follow edge and returns the
// target's follower count.
func (s *SocialService) Follow(ctx context.Context, origin, password, target string) (int, error) {
	if err := s.verify(ctx, origin, password); err != nil {
		return 0, err
	}
	if err := s.follows.Follow(ctx, origin, target); err != nil {
		return 0, err
	}
	return s.follows.CountFollowers(ctx, target)
}

// Unfollow removes the (origin, target) follow edge and returns the
// target's follower count.
func (s *SocialService) Unfollow(ctx context.Context, origin, password, target string) (int, error) {
	if err := s.verify(ctx, origin, password); err != nil {
		return 0, err
	}
	if err := s.follows.Unfollow(ctx, origin, target); err != nil {
		return 0, err
	}
	return s.follows.CountFollowers(ctx, target)
}

func (s *SocialService) verify(ctx context.Context, user, password string) error {
	ok, err := s.auth.Verify(ctx, user, password)
	if err != nil {
		return fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}
