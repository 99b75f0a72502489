package trail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrEmptyTrail means the trail template has no courses; there is
	// nothing to start.
	ErrEmptyTrail = errors.New("trilha sem cursos")

	// ErrAlreadyStarted means phase 1 has left NOT_STARTED, so StartTrail
	// is no longer a valid trigger.
	ErrAlreadyStarted = errors.New("trilha já iniciada")

	// ErrPhaseLocked means the target phase is still locked for the user.
	ErrPhaseLocked = errors.New("fase bloqueada")

	// ErrAlreadyCompleted means the target phase is already concluded.
	ErrAlreadyCompleted = errors.New("fase já concluída")

	// ErrPhaseNotFound means no phase with the given ordinal exists.
	ErrPhaseNotFound = errors.New("fase inexistente")
)

// Recorder receives successful phase transitions for local bookkeeping.
// Failures are the recorder's problem; the controller never checks them.
type Recorder interface {
	RecordTransition(userID, trailCourseID int, from, to Status, at time.Time)
}

// Controller drives the per-user phase state machine of a trail:
// NOT_STARTED → IN_PROGRESS → COMPLETED, one phase unlocking the next.
// It holds no per-user state; user and trail ids are explicit on every
// call, and every decision is made against a fresh read of the store.
type Controller struct {
	backend Backend
	logger  *zap.Logger
	rec     Recorder
	now     func() time.Time
}

// NewController creates a progression controller. rec may be nil.
func NewController(backend Backend, logger *zap.Logger, rec Recorder) *Controller {
	return &Controller{
		backend: backend,
		logger:  logger,
		rec:     rec,
		now:     time.Now,
	}
}

// View returns the user's merged, ordered view of a trail.
func (c *Controller) View(ctx context.Context, trailID, userID int) ([]PhaseView, error) {
	template, err := c.backend.ListTrailCourses(ctx, trailID)
	if err != nil {
		return nil, fmt.Errorf("carregar cursos da trilha %d: %w", trailID, err)
	}
	overlays, err := c.backend.ListUserOverlays(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("carregar progresso do usuário %d: %w", userID, err)
	}
	return Merge(template, overlays), nil
}

// StartTrail moves phase 1 to IN_PROGRESS. Only valid while phase 1 is
// NOT_STARTED; the overlay row is created lazily by this first write.
func (c *Controller) StartTrail(ctx context.Context, trailID, userID int) error {
	view, err := c.View(ctx, trailID, userID)
	if err != nil {
		return err
	}
	if len(view) == 0 {
		return ErrEmptyTrail
	}

	first := view[0]
	if first.Status != StatusNotStarted {
		return ErrAlreadyStarted
	}

	if err := c.writeStatus(ctx, userID, first.Course.ID, StatusInProgress, nil); err != nil {
		return err
	}
	c.record(userID, first.Course.ID, first.Status, StatusInProgress)
	return nil
}

// CompleteCourse concludes the phase at the given 1-based ordinal and,
// when a successor phase exists and is not already concluded, unlocks it.
//
// The completion write is the operation: if it fails, nothing changed and
// the caller's previously-read view stays valid. A failed successor
// unlock never undoes the completion — it is logged and left for the next
// read or retry to repair.
func (c *Controller) CompleteCourse(ctx context.Context, trailID, userID, ordinal int) error {
	view, err := c.View(ctx, trailID, userID)
	if err != nil {
		return err
	}

	idx := -1
	for i, pv := range view {
		if pv.Course.Ordinal == ordinal {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: ordinal %d", ErrPhaseNotFound, ordinal)
	}

	phase := view[idx]
	if phase.Status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if Locked(phase.Status) {
		return fmt.Errorf("%w: fase %d", ErrPhaseLocked, ordinal)
	}

	completedAt := c.now()
	if err := c.writeStatus(ctx, userID, phase.Course.ID, StatusCompleted, &completedAt); err != nil {
		return err
	}
	c.record(userID, phase.Course.ID, phase.Status, StatusCompleted)

	if idx+1 >= len(view) {
		return nil
	}
	next := view[idx+1]
	if next.Status == StatusCompleted {
		return nil
	}
	if err := c.writeStatus(ctx, userID, next.Course.ID, StatusInProgress, nil); err != nil {
		c.logger.Warn("falha ao desbloquear próxima fase",
			zap.Int("usuario", userID),
			zap.Int("trilhaCurso", next.Course.ID),
			zap.Int("ordinal", next.Course.Ordinal),
			zap.Error(err))
		return nil
	}
	c.record(userID, next.Course.ID, next.Status, StatusInProgress)
	return nil
}

func (c *Controller) writeStatus(ctx context.Context, userID, trailCourseID int, st Status, completedAt *time.Time) error {
	return c.backend.SaveOverlay(ctx, Overlay{
		UserID:        userID,
		TrailCourseID: trailCourseID,
		Status:        st,
		CompletedAt:   completedAt,
	})
}

func (c *Controller) record(userID, trailCourseID int, from, to Status) {
	if c.rec == nil {
		return
	}
	c.rec.RecordTransition(userID, trailCourseID, from, to, c.now())
}
