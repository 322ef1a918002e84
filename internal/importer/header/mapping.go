// Package header resolves source CSV headers to canonical fields using the
// catalog's synonym table.
package header

import (
	"strings"

	"github.com/MrJamesThe3rd/mobility/internal/catalog"
	"github.com/MrJamesThe3rd/mobility/internal/mobility"
	"github.com/MrJamesThe3rd/mobility/internal/textnorm"
)

// Binding ties one source header, as written in the file, to a field.
type Binding struct {
	Header string
	Field  mobility.Field
}

// Mapping is the ordered set of headers that matched an alias.
type Mapping struct {
	bindings []Binding
}

// Build maps every header whose folded form equals a folded alias. Aliases are
// tried in table order and the first equal one wins; comparison is whole-string,
// never substring. Headers without a match are left out.
func Build(headers []string, table []catalog.Synonym) Mapping {
	aliases := make([]string, len(table))
	for i, s := range table {
		aliases[i] = textnorm.Fold(s.Alias)
	}

	var m Mapping

	for _, h := range headers {
		key := textnorm.Fold(strings.TrimSpace(h))

		for i, alias := range aliases {
			if alias == key {
				m.bindings = append(m.bindings, Binding{Header: h, Field: table[i].Field})
				break
			}
		}
	}

	return m
}

// Bindings returns the matched headers in header order.
func (m Mapping) Bindings() []Binding {
	return append([]Binding(nil), m.bindings...)
}

// Field returns the field a header was mapped to.
func (m Mapping) Field(header string) (mobility.Field, bool) {
	for _, b := range m.bindings {
		if b.Header == header {
			return b.Field, true
		}
	}

	return "", false
}

func (m Mapping) Len() int {
	return len(m.bindings)
}

// Map returns the mapping as header -> field.
func (m Mapping) Map() map[string]mobility.Field {
	out := make(map[string]mobility.Field, len(m.bindings))
	for _, b := range m.bindings {
		out[b.Header] = b.Field
	}

	return out
}
