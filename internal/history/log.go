package history

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/trilhaup/trilha/internal/diagnostic"
	"github.com/trilhaup/trilha/internal/trail"
)

// DiagnosticEntry is one logged diagnostic submission.
type DiagnosticEntry struct {
	ID            string
	UserID        int
	TrailID       int
	Administracao int
	Tecnologia    int
	RH            int
	CreatedAt     time.Time
}

// TransitionEntry is one logged phase transition.
type TransitionEntry struct {
	ID            string
	UserID        int
	TrailCourseID int
	From          string
	To            string
	At            time.Time
}

// RecordDiagnostic implements diagnostic.Recorder.
func (s *Store) RecordDiagnostic(rec diagnostic.Record) {
	_, err := s.db.Exec(
		`INSERT INTO diagnostics (id, user_id, trail_id, administracao, tecnologia, rh, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		newUUID(), rec.UserID, rec.TrailID,
		rec.Tally.Administracao, rec.Tally.Tecnologia, rec.Tally.RH,
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		s.logger.Warn("falha ao registrar diagnóstico no histórico", zap.Error(err))
	}
}

// RecordTransition implements trail.Recorder.
func (s *Store) RecordTransition(userID, trailCourseID int, from, to trail.Status, at time.Time) {
	_, err := s.db.Exec(
		`INSERT INTO transitions (id, user_id, trail_course_id, from_status, to_status, at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		newUUID(), userID, trailCourseID, from.String(), to.String(),
		at.UTC().Format(time.RFC3339),
	)
	if err != nil {
		s.logger.Warn("falha ao registrar transição no histórico", zap.Error(err))
	}
}

// Diagnostics returns a user's logged submissions, newest first.
func (s *Store) Diagnostics(ctx context.Context, userID int) ([]DiagnosticEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, trail_id, administracao, tecnologia, rh, created_at
		 FROM diagnostics WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("consultar histórico de diagnósticos: %w", err)
	}
	defer rows.Close()

	var entries []DiagnosticEntry
	for rows.Next() {
		var e DiagnosticEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.TrailID, &e.Administracao, &e.Tecnologia, &e.RH, &createdAt); err != nil {
			return nil, fmt.Errorf("ler histórico de diagnósticos: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Transitions returns a user's logged phase transitions, newest first.
func (s *Store) Transitions(ctx context.Context, userID int) ([]TransitionEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, trail_course_id, from_status, to_status, at
		 FROM transitions WHERE user_id = ? ORDER BY at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("consultar histórico de transições: %w", err)
	}
	defer rows.Close()

	var entries []TransitionEntry
	for rows.Next() {
		var e TransitionEntry
		var at string
		if err := rows.Scan(&e.ID, &e.UserID, &e.TrailCourseID, &e.From, &e.To, &at); err != nil {
			return nil, fmt.Errorf("ler histórico de transições: %w", err)
		}
		e.At, _ = time.Parse(time.RFC3339, at)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
