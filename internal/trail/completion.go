package trail

import (
	"context"
	"fmt"
)

// Aggregator derives the user-level "eligible to re-diagnose" signal. It
// is a read-time derivation, never persisted: it must be recomputed
// whenever trail or course data may have changed.
type Aggregator struct {
	backend Backend
}

// NewAggregator creates a completion aggregator.
func NewAggregator(backend Backend) *Aggregator {
	return &Aggregator{backend: backend}
}

// EligibleToRediagnose reports whether the user may retake the diagnostic
// quiz: true with zero linked trails, or once every linked trail is
// complete. Any linked trail with a non-completed course makes it false.
func (a *Aggregator) EligibleToRediagnose(ctx context.Context, userID int) (bool, error) {
	linked, err := a.backend.ListUserTrails(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("carregar trilhas do usuário %d: %w", userID, err)
	}

	for _, t := range linked {
		complete, err := a.trailComplete(ctx, t.ID, userID)
		if err != nil {
			return false, err
		}
		if !complete {
			return false, nil
		}
	}
	return true, nil
}

// trailComplete reports whether every phase of one trail is concluded for
// the user. A trail with no courses is never complete.
func (a *Aggregator) trailComplete(ctx context.Context, trailID, userID int) (bool, error) {
	template, err := a.backend.ListTrailCourses(ctx, trailID)
	if err != nil {
		return false, fmt.Errorf("carregar cursos da trilha %d: %w", trailID, err)
	}
	if len(template) == 0 {
		return false, nil
	}
	overlays, err := a.backend.ListUserOverlays(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("carregar progresso do usuário %d: %w", userID, err)
	}
	for _, pv := range Merge(template, overlays) {
		if pv.Status != StatusCompleted {
			return false, nil
		}
	}
	return true, nil
}
