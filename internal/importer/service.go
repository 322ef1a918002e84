package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/MrJamesThe3rd/mobility/internal/catalog"
	"github.com/MrJamesThe3rd/mobility/internal/encoding"
	"github.com/MrJamesThe3rd/mobility/internal/importer/csvtext"
	"github.com/MrJamesThe3rd/mobility/internal/importer/datefmt"
	"github.com/MrJamesThe3rd/mobility/internal/importer/header"
	"github.com/MrJamesThe3rd/mobility/internal/matching"
	"github.com/MrJamesThe3rd/mobility/internal/mobility"
	"github.com/MrJamesThe3rd/mobility/internal/textnorm"
)

// transform turns a non-empty raw cell into the value to store. ok is false
// when the cell could not be converted; the warning then explains why.
type transform func(field mobility.Field, raw string) (value string, ok bool, warning string)

type Service struct {
	synonyms []catalog.Synonym
	matchers map[mobility.Field]*matching.Matcher
	types    map[string]mobility.Type
	dispatch map[kind]transform
}

// NewService builds an importer over a loaded catalog. The catalog must not be
// modified afterwards.
func NewService(cat *catalog.Catalog) *Service {
	positions := matching.NewMatcher(cat.Positions)

	s := &Service{
		synonyms: cat.Synonyms,
		matchers: map[mobility.Field]*matching.Matcher{
			mobility.FieldTemporaryPosition: positions,
			mobility.FieldOriginalPosition:  positions,
			mobility.FieldHRBP:              matching.NewMatcher(cat.HRBPs),
		},
		types: make(map[string]mobility.Type, len(cat.TypeAliases)),
	}

	for alias, t := range cat.TypeAliases {
		s.types[textnorm.Fold(strings.TrimSpace(alias))] = t
	}

	s.dispatch = map[kind]transform{
		kindText:         s.text,
		kindDate:         s.date,
		kindOption:       s.option,
		kindMobilityType: s.mobilityType,
	}

	return s
}

// Import reads r, takes its first data row and writes every recognized column
// into store. Only an unreadable source or a file without data rows makes the
// import fail; unknown columns are ignored and bad cells become warnings.
func (s *Service) Import(r io.Reader, store FieldStore) Result {
	text, _, err := encoding.ReadAll(r)
	if err != nil {
		return failed(err.Error())
	}

	records := csvtext.Parse(text)
	if len(records) == 0 {
		return failed(MsgNoData)
	}

	rec := records[0]
	mapping := header.Build(rec.Headers(), s.synonyms)

	res := Result{Success: true, Warnings: []string{}}

	for _, b := range mapping.Bindings() {
		raw := rec.Get(b.Header)
		if raw == "" {
			continue
		}

		value, ok, warning := s.dispatch[kindOf(b.Field)](b.Field, raw)
		if !ok {
			res.Warnings = append(res.Warnings, warning)
			continue
		}

		store.Set(b.Field, value)
		res.FieldsImported++
	}

	return res
}

func (s *Service) text(_ mobility.Field, raw string) (string, bool, string) {
	return strings.TrimSpace(raw), true, ""
}

func (s *Service) date(_ mobility.Field, raw string) (string, bool, string) {
	v := datefmt.Normalize(raw)
	if v == "" {
		return "", false, fmt.Sprintf("could not parse date: %q", raw)
	}

	return v, true, ""
}

func (s *Service) option(field mobility.Field, raw string) (string, bool, string) {
	m, ok := s.matchers[field]
	if !ok {
		return strings.TrimSpace(raw), true, ""
	}

	v := m.Match(raw)
	if v != "" {
		return v, true, ""
	}

	if field == mobility.FieldHRBP {
		return "", false, fmt.Sprintf("no match for HRBP: %q", raw)
	}

	return "", false, fmt.Sprintf("no match for position: %q", raw)
}

// mobilityType maps Spanish labels and codes to a type code. Values outside the
// alias table are kept as written.
func (s *Service) mobilityType(_ mobility.Field, raw string) (string, bool, string) {
	if t, ok := s.types[textnorm.Fold(strings.TrimSpace(raw))]; ok {
		return string(t), true, ""
	}

	return strings.TrimSpace(raw), true, ""
}
