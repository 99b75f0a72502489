package category

import (
	"errors"
	"strings"

	"github.com/trilhaup/trilha/internal/normalize"
	"github.com/trilhaup/trilha/internal/trail"
)

// ErrTrailNotResolved means no known trail matched the winning category.
// Callers must surface this to the user; resolution never falls back to a
// default trail.
var ErrTrailNotResolved = errors.New("trilha recomendada não encontrada no sistema")

// synonyms lists the normalized name fragments that identify each
// category in human-authored trail names.
var synonyms = map[Category][]string{
	Administracao: {"administracao", "adm", "gestao", "negocios"},
	Tecnologia:    {"tecnologia", "ti", "tech", "desenvolvimento"},
	RH:            {"rh", "recursos humanos", "gente e gestao", "pessoas"},
}

// ResolveTrail maps a winning category to a concrete trail id by fuzzy
// name matching over the trails known to the system. Matching is a pure
// lookup over the supplied slice; the first matching trail wins.
func ResolveTrail(c Category, trails []trail.Trail) (int, error) {
	for _, t := range trails {
		if matches(c, t.Name) {
			return t.ID, nil
		}
	}
	return 0, ErrTrailNotResolved
}

// matches reports whether a trail name belongs to a category: any synonym
// contained in the name or vice versa, with a direct comparison against
// the display label as a fallback.
func matches(c Category, trailName string) bool {
	name := normalize.String(trailName)
	if name == "" {
		return false
	}
	for _, syn := range synonyms[c] {
		if strings.Contains(name, syn) || strings.Contains(syn, name) {
			return true
		}
	}
	label := normalize.String(DisplayName(c))
	return strings.Contains(name, label) || strings.Contains(label, name)
}
