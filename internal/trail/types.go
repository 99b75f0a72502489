package trail

import (
	"context"
	"time"
)

// Trail is an ordered learning path composed of courses.
type Trail struct {
	ID         int
	Name       string
	PhaseCount int
}

// Course is one slot of a trail's shared template. Ordinals are 1-based,
// contiguous, and unique within a trail.
type Course struct {
	ID              int
	TrailID         int
	CourseID        int
	Ordinal         int
	Title           string
	Link            string
	Level           string
	DurationMinutes int
}

// Overlay is a per-user progress row against one template course. The
// absence of an overlay row means the phase was never touched.
type Overlay struct {
	UserID        int
	TrailCourseID int
	Status        Status
	CompletedAt   *time.Time
}

// Source says where a phase's status came from in a merged view.
type Source int

const (
	// SourceDefault marks a phase with no overlay row (implicit NOT_STARTED).
	SourceDefault Source = iota
	// SourceOverlay marks a phase whose status came from a stored row.
	SourceOverlay
)

// PhaseView is one phase of a user's view of a trail: the template course
// plus the user's status for it.
type PhaseView struct {
	Course      Course
	Status      Status
	CompletedAt *time.Time
	Source      Source
}

// Backend is the subset of the remote store the progression engine needs.
type Backend interface {
	ListTrails(ctx context.Context) ([]Trail, error)
	ListTrailCourses(ctx context.Context, trailID int) ([]Course, error)
	ListUserOverlays(ctx context.Context, userID int) ([]Overlay, error)
	SaveOverlay(ctx context.Context, ov Overlay) error
	ListUserTrails(ctx context.Context, userID int) ([]Trail, error)
}
