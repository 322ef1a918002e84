// Package matching resolves free-text values to one member of a closed option
// list, ignoring case and accents.
package matching

import (
	"strings"

	"github.com/MrJamesThe3rd/mobility/internal/textnorm"
)

// Match returns the option that best fits raw, or "" when none does.
//
// An option whose folded form equals the folded input wins outright. Failing
// that, the first option that contains the input, or is contained by it, is
// returned. List order decides both passes, so two options that both contain
// the input resolve to whichever is declared first.
func Match(raw string, options []string) string {
	return NewMatcher(options).Match(raw)
}

// Matcher holds an option list with its folded keys computed once.
type Matcher struct {
	options []string
	keys    []string
}

func NewMatcher(options []string) *Matcher {
	keys := make([]string, len(options))
	for i, o := range options {
		keys[i] = textnorm.Fold(strings.TrimSpace(o))
	}

	return &Matcher{options: options, keys: keys}
}

// Match returns the option that best fits raw, or "" when none does.
func (m *Matcher) Match(raw string) string {
	needle := textnorm.Fold(strings.TrimSpace(raw))
	if needle == "" {
		return ""
	}

	for i, key := range m.keys {
		if key == needle {
			return m.options[i]
		}
	}

	for i, key := range m.keys {
		if key == "" {
			continue
		}

		if strings.Contains(key, needle) || strings.Contains(needle, key) {
			return m.options[i]
		}
	}

	return ""
}

// Options returns the list the matcher was built with.
func (m *Matcher) Options() []string {
	return append([]string(nil), m.options...)
}
