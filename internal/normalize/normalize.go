// Package normalize folds human-authored Portuguese text into a
// comparison-friendly normal form. Trail names, category synonyms, and
// status strings all pass through here before any matching.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper removes combining marks after NFD decomposition, turning
// "Administração" into "Administracao".
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// String lower-cases, trims, and strips diacritics from s.
func String(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		// Transform only fails on invalid UTF-8; fall back to the raw input.
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
