package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/trilhaup/trilha/internal/category"
	"github.com/trilhaup/trilha/internal/quiz"
)

// ErrNotEligible means the user still has an unfinished linked trail and
// may not retake the diagnostic yet.
var ErrNotEligible = errors.New("conclua suas trilhas atuais antes de refazer o diagnóstico")

// Recorder receives successful submissions for local bookkeeping.
type Recorder interface {
	RecordDiagnostic(rec Record)
}

// Submitter orchestrates a quiz submission: score the answers, resolve
// the recommended trail, persist the diagnostic, and link the trail to
// the user. It is stateless; user id comes in on every call.
type Submitter struct {
	backend     Backend
	eligibility Eligibility
	logger      *zap.Logger
	rec         Recorder
	now         func() time.Time
}

// NewSubmitter creates a diagnostic submitter. rec may be nil.
func NewSubmitter(backend Backend, eligibility Eligibility, logger *zap.Logger, rec Recorder) *Submitter {
	return &Submitter{
		backend:     backend,
		eligibility: eligibility,
		logger:      logger,
		rec:         rec,
		now:         time.Now,
	}
}

// Submit runs the full diagnostic pipeline for a complete answer set.
//
// The diagnostic record write is the authoritative step: once it
// succeeds, the submission succeeded. The trail link that follows is
// advisory — its failure is logged and dropped, never surfaced, since the
// link is derivable from the diagnostic history and repaired by later
// reads. Nothing is persisted when resolution fails or the user is not
// yet eligible to retake the quiz.
func (s *Submitter) Submit(ctx context.Context, userID int, bank []quiz.Question, answers quiz.AnswerSet) (*Result, error) {
	if err := quiz.Validate(bank, answers); err != nil {
		return nil, err
	}
	tally, winner := quiz.Score(bank, answers)

	trails, err := s.backend.ListTrails(ctx)
	if err != nil {
		return nil, fmt.Errorf("carregar trilhas: %w", err)
	}
	trailID, err := category.ResolveTrail(winner, trails)
	if err != nil {
		return nil, err
	}

	eligible, err := s.eligibility.EligibleToRediagnose(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrNotEligible
	}

	rec := Record{
		UserID:    userID,
		TrailID:   trailID,
		Tally:     tally,
		CreatedAt: s.now(),
	}
	if err := s.backend.CreateDiagnostic(ctx, rec); err != nil {
		return nil, err
	}
	if s.rec != nil {
		s.rec.RecordDiagnostic(rec)
	}

	s.linkTrail(ctx, userID, trailID)

	result := &Result{TrailID: trailID, Winner: winner, Tally: tally}
	for _, t := range trails {
		if t.ID == trailID {
			result.TrailName = t.Name
			break
		}
	}
	return result, nil
}

// linkTrail best-effort associates the trail with the user's profile,
// skipping trails already linked so a repeat recommendation never
// duplicates the association.
func (s *Submitter) linkTrail(ctx context.Context, userID, trailID int) {
	linked, err := s.backend.ListUserTrails(ctx, userID)
	if err != nil {
		s.logger.Warn("falha ao verificar trilhas vinculadas",
			zap.Int("usuario", userID), zap.Error(err))
	} else {
		for _, t := range linked {
			if t.ID == trailID {
				return
			}
		}
	}

	if err := s.backend.LinkTrail(ctx, userID, trailID); err != nil {
		s.logger.Warn("falha ao vincular trilha ao usuário",
			zap.Int("usuario", userID),
			zap.Int("trilha", trailID),
			zap.Error(err))
	}
}
