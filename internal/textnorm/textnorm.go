// Package textnorm folds accents and case so that human-typed headers and values
// can be compared regardless of how the source system spelled them.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveAccents decomposes s (NFD) and drops every combining mark,
// e.g. "Ubicación" -> "Ubicacion", "Año" -> "Ano".
func RemoveAccents(s string) string {
	if s == "" {
		return ""
	}

	// Transformers keep internal state, so each call gets its own chain.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

// Fold lower-cases s and removes its accents. It is the comparison key used for
// header aliases, option lists and mobility-type labels.
func Fold(s string) string {
	return RemoveAccents(strings.ToLower(s))
}
