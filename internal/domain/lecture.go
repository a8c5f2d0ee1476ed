package domain

import (
	"context"
	"time"
)

// Lecture is a step-by-step tutorial. Steps holds the serialized step
// document as authored by the client; the step count is derived from
// it at view time, never stored. KeyPhoto may be empty.
type Lecture struct {
	ID          string
	Title       string
	Description string
	Creator     string
	KeyPhoto    string
	Steps       string
	Timestamp   time.Time
}

// LectureUpdate lists the mutable lecture fields. Creator is frozen
// after creation.
type LectureUpdate struct {
	Title       *string
	Description *string
	Steps       *string
	KeyPhoto    *string
}

// LectureRepository defines persistence operations for lectures.
type LectureRepository interface {
	Create(ctx context.Context, lecture *Lecture) error
	GetByID(ctx context.Context, id string) (*Lecture, error)
	ListByCreator(ctx context.Context, creator string) ([]Lecture, error)
	ListAfter(ctx context.Context, cursor time.Time, limit int) ([]Lecture, error)
	ListBefore(ctx context.Context, cursor time.Time, limit int) ([]Lecture, error)
	Update(ctx context.Context, id string, upd LectureUpdate) (int64, error)
	Delete(ctx context.Context, id string) error
}
