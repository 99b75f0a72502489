package trail

import (
	"strings"

	"github.com/trilhaup/trilha/internal/normalize"
)

// Status is the closed per-user completion state of a phase. Raw backend
// strings are normalized into this enum the moment they cross the API
// boundary; nothing downstream branches on raw strings.
type Status int

const (
	// StatusUnknown covers empty or unparseable status strings. Treated as
	// locked everywhere a decision is made.
	StatusUnknown Status = iota
	StatusNotStarted
	StatusInProgress
	StatusCompleted
)

// ParseStatus normalizes a raw backend status string. The backend carries
// historical spelling drift ("CONCLUIDA", "CONCLUÍDA", "CONCLUIDO", mixed
// casing), so matching is accent-stripped and prefix-based.
func ParseStatus(raw string) Status {
	s := normalize.String(raw)
	switch {
	case s == "":
		return StatusUnknown
	case strings.HasPrefix(s, "nao iniciad"):
		return StatusNotStarted
	case strings.HasPrefix(s, "em andamento"), strings.HasPrefix(s, "em progresso"):
		return StatusInProgress
	case strings.HasPrefix(s, "concluid"):
		return StatusCompleted
	default:
		return StatusUnknown
	}
}

// Wire returns the canonical backend spelling for a status.
func (s Status) Wire() string {
	switch s {
	case StatusNotStarted:
		return "NAO INICIADA"
	case StatusInProgress:
		return "EM ANDAMENTO"
	case StatusCompleted:
		return "CONCLUIDA"
	default:
		return ""
	}
}

// String returns a display label for a status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "não iniciada"
	case StatusInProgress:
		return "em andamento"
	case StatusCompleted:
		return "concluída"
	default:
		return "desconhecida"
	}
}

// Locked reports whether a phase with this status is clickable for the
// user. Unknown statuses are locked, never unlocked.
func Locked(s Status) bool {
	return s == StatusNotStarted || s == StatusUnknown
}
