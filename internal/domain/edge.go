package domain

import "context"

// StarRepository manages the star edge sets. An edge is the bare
// (user, target) pair; creating one that already exists fails with
// ErrDuplicate via the store's uniqueness constraint.
type StarRepository interface {
	StarRepo(ctx context.Context, user, repoID string) error
	UnstarRepo(ctx context.Context, user, repoID string) error
	CountRepoStars(ctx context.Context, repoID string) (int, error)

	StarLecture(ctx context.Context, user, lectureID string) error
	UnstarLecture(ctx context.Context, user, lectureID string) error
	CountLectureStars(ctx context.Context, lectureID string) (int, error)

	// DeleteLectureStars removes every star edge pointing at the
	// lecture, used when the lecture itself is removed.
	DeleteLectureStars(ctx context.Context, lectureID string) error
}

// FollowRepository manages the user-to-user follow edge set.
type FollowRepository interface {
	Follow(ctx context.Context, origin, target string) error
	Unfollow(ctx context.Context, origin, target string) error
	CountFollowers(ctx context.Context, target string) (int, error)
}
