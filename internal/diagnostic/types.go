package diagnostic

import (
	"context"
	"time"

	"github.com/trilhaup/trilha/internal/category"
	"github.com/trilhaup/trilha/internal/quiz"
	"github.com/trilhaup/trilha/internal/trail"
)

// Record is one historical diagnostic: who was diagnosed, which trail was
// recommended, and the three category tallies behind it. Records are
// created once at submission time and never mutated; a retake creates a
// new record.
type Record struct {
	UserID    int
	TrailID   int
	Tally     quiz.Tally
	CreatedAt time.Time
}

// Result is what a successful submission returns for immediate display.
type Result struct {
	TrailID   int
	TrailName string
	Winner    category.Category
	Tally     quiz.Tally
}

// Backend is the subset of the remote store the submitter needs.
type Backend interface {
	ListTrails(ctx context.Context) ([]trail.Trail, error)
	ListUserTrails(ctx context.Context, userID int) ([]trail.Trail, error)
	CreateDiagnostic(ctx context.Context, rec Record) error
	LinkTrail(ctx context.Context, userID, trailID int) error
}

// Eligibility gates quiz resubmission. Implemented by trail.Aggregator.
type Eligibility interface {
	EligibleToRediagnose(ctx context.Context, userID int) (bool, error)
}
