package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/mobility/internal/catalog"
	"github.com/MrJamesThe3rd/mobility/internal/matching"
)

func TestMatch(t *testing.T) {
	positions := catalog.Default().Positions
	hrbps := catalog.Default().HRBPs

	tests := []struct {
		name    string
		raw     string
		options []string
		want    string
	}{
		{
			name:    "Substring of option",
			raw:     "conductor",
			options: []string{"Delivery Driver (Conductor)", "Sales replenisher (Reponedor)"},
			want:    "Delivery Driver (Conductor)",
		},
		{
			name:    "Exact ignoring case",
			raw:     "marta mengual",
			options: hrbps,
			want:    "Marta Mengual",
		},
		{
			name:    "Exact ignoring accents",
			raw:     "Jesús Tejado",
			options: hrbps,
			want:    "Jesus Tejado",
		},
		{
			name:    "Input contains option",
			raw:     "HRBP: Marta Mengual (Madrid)",
			options: hrbps,
			want:    "Marta Mengual",
		},
		{
			name:    "Surrounding whitespace",
			raw:     "  Sales Promoter ADR (ADR)  ",
			options: positions,
			want:    "Sales Promoter ADR (ADR)",
		},
		{
			name:    "Exact beats earlier substring",
			raw:     "Seller",
			options: []string{"Pre Sale Seller", "Seller"},
			want:    "Seller",
		},
		{
			name:    "No match",
			raw:     "zzz",
			options: positions,
			want:    "",
		},
		{
			name:    "Empty input",
			raw:     "",
			options: positions,
			want:    "",
		},
		{
			name:    "Blank input",
			raw:     "   ",
			options: positions,
			want:    "",
		},
		{
			name:    "Empty option list",
			raw:     "conductor",
			options: nil,
			want:    "",
		},
		{
			name:    "Empty option never matches everything",
			raw:     "zzz",
			options: []string{"", "Other"},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matching.Match(tt.raw, tt.options))
		})
	}
}

// Both options contain "seller"; the first declared one wins. This is a known
// ambiguity of the substring pass, kept on purpose.
func TestMatch_SubstringTieGoesToListOrder(t *testing.T) {
	options := []string{
		"Auto Sale Seller (Vendedor Autoventa)",
		"Pre Sale Seller (Vendedor Preventa)",
	}

	assert.Equal(t, options[0], matching.Match("seller", options))

	options[0], options[1] = options[1], options[0]
	assert.Equal(t, options[0], matching.Match("seller", options))
}

func TestMatcher_ReturnsMemberVerbatim(t *testing.T) {
	positions := catalog.Default().Positions
	m := matching.NewMatcher(positions)

	for _, p := range positions {
		assert.Equal(t, p, m.Match(p))
	}

	assert.Equal(t, positions, m.Options())
}
