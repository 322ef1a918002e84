// Package catalog holds the configuration tables the importer matches against:
// the header synonym table, the option lists shown by the form, and the
// mobility-type value aliases. A catalog is read-only once loaded.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/mobility/internal/mobility"
)

var (
	ErrUnknownSource = errors.New("unknown catalog source")
	ErrNoRepository  = errors.New("catalog source needs a repository")
)

// Source selects where the catalog is read from.
type Source string

const (
	SourceBuiltin  Source = "builtin"
	SourceFile     Source = "file"
	SourcePostgres Source = "postgres"
)

// Synonym maps one lower-case header alias to a canonical field.
type Synonym struct {
	Alias string         `yaml:"alias"`
	Field mobility.Field `yaml:"field"`
}

// TypeOption is a selectable mobility type with its display label.
type TypeOption struct {
	Value mobility.Type `yaml:"value" json:"value"`
	Label string        `yaml:"label" json:"label"`
}

// Catalog is the full set of matching tables. Synonyms and option lists are
// ordered: the first matching entry wins.
type Catalog struct {
	Synonyms      []Synonym                `yaml:"synonyms"`
	Positions     []string                 `yaml:"positions"`
	HRBPs         []string                 `yaml:"hrbps"`
	MobilityTypes []TypeOption             `yaml:"mobility_types"`
	TypeAliases   map[string]mobility.Type `yaml:"type_aliases"`
}

// Repository loads a catalog from external storage.
type Repository interface {
	LoadCatalog(ctx context.Context) (*Catalog, error)
}

// Load returns the catalog for the given source. path is used by SourceFile,
// repo by SourcePostgres.
func Load(ctx context.Context, src Source, path string, repo Repository) (*Catalog, error) {
	var (
		c   *Catalog
		err error
	)

	switch src {
	case SourceBuiltin, "":
		return Default(), nil
	case SourceFile:
		c, err = LoadFile(path)
	case SourcePostgres:
		if repo == nil {
			return nil, ErrNoRepository
		}

		c, err = repo.LoadCatalog(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, src)
	}

	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s catalog: %w", src, err)
	}

	return c, nil
}

// Validate checks that the tables are usable. Duplicate aliases are allowed;
// table order decides between them.
func (c *Catalog) Validate() error {
	if len(c.Synonyms) == 0 {
		return errors.New("no header synonyms")
	}

	for i, s := range c.Synonyms {
		if s.Alias == "" {
			return fmt.Errorf("synonym %d: empty alias", i)
		}

		if !s.Field.Valid() {
			return fmt.Errorf("synonym %q: unknown field %q", s.Alias, s.Field)
		}
	}

	if len(c.Positions) == 0 {
		return errors.New("no positions")
	}

	if len(c.HRBPs) == 0 {
		return errors.New("no HRBPs")
	}

	return nil
}

// Options returns the option list a field is matched against, or nil when the
// field is not an enumeration.
func (c *Catalog) Options(f mobility.Field) []string {
	switch f {
	case mobility.FieldTemporaryPosition, mobility.FieldOriginalPosition:
		return c.Positions
	case mobility.FieldHRBP:
		return c.HRBPs
	}

	return nil
}
