package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/mobility/internal/catalog"
	"github.com/MrJamesThe3rd/mobility/internal/mobility"
)

// Option list names in the catalog_options table.
const (
	listPosition = "position"
	listHRBP     = "hrbp"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadCatalog reads every catalog table. Row order comes from sort_order, which
// is the order the importer matches in.
func (s *Store) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	synonyms, err := s.listSynonyms(ctx)
	if err != nil {
		return nil, err
	}

	positions, err := s.listOptions(ctx, listPosition)
	if err != nil {
		return nil, err
	}

	hrbps, err := s.listOptions(ctx, listHRBP)
	if err != nil {
		return nil, err
	}

	types, err := s.listMobilityTypes(ctx)
	if err != nil {
		return nil, err
	}

	aliases, err := s.listTypeAliases(ctx)
	if err != nil {
		return nil, err
	}

	return &catalog.Catalog{
		Synonyms:      synonyms,
		Positions:     positions,
		HRBPs:         hrbps,
		MobilityTypes: types,
		TypeAliases:   aliases,
	}, nil
}

func (s *Store) listSynonyms(ctx context.Context) ([]catalog.Synonym, error) {
	query := `
		SELECT alias, field
		FROM header_aliases
		ORDER BY sort_order ASC, alias ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing header aliases: %w", err)
	}
	defer rows.Close()

	var synonyms []catalog.Synonym

	for rows.Next() {
		var alias, field string
		if err := rows.Scan(&alias, &field); err != nil {
			return nil, fmt.Errorf("scanning header alias: %w", err)
		}

		synonyms = append(synonyms, catalog.Synonym{Alias: alias, Field: mobility.Field(field)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating header aliases: %w", err)
	}

	return synonyms, nil
}

func (s *Store) listOptions(ctx context.Context, list string) ([]string, error) {
	query := `
		SELECT value
		FROM catalog_options
		WHERE list = $1
		ORDER BY sort_order ASC
	`

	rows, err := s.db.QueryContext(ctx, query, list)
	if err != nil {
		return nil, fmt.Errorf("listing %s options: %w", list, err)
	}
	defer rows.Close()

	var options []string

	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scanning %s option: %w", list, err)
		}

		options = append(options, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s options: %w", list, err)
	}

	return options, nil
}

func (s *Store) listMobilityTypes(ctx context.Context) ([]catalog.TypeOption, error) {
	query := `
		SELECT value, label
		FROM mobility_types
		ORDER BY sort_order ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing mobility types: %w", err)
	}
	defer rows.Close()

	var types []catalog.TypeOption

	for rows.Next() {
		var value, label string
		if err := rows.Scan(&value, &label); err != nil {
			return nil, fmt.Errorf("scanning mobility type: %w", err)
		}

		types = append(types, catalog.TypeOption{Value: mobility.Type(value), Label: label})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mobility types: %w", err)
	}

	return types, nil
}

func (s *Store) listTypeAliases(ctx context.Context) (map[string]mobility.Type, error) {
	query := `SELECT alias, value FROM mobility_type_aliases`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing mobility type aliases: %w", err)
	}
	defer rows.Close()

	aliases := make(map[string]mobility.Type)

	for rows.Next() {
		var alias, value string
		if err := rows.Scan(&alias, &value); err != nil {
			return nil, fmt.Errorf("scanning mobility type alias: %w", err)
		}

		aliases[alias] = mobility.Type(value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mobility type aliases: %w", err)
	}

	return aliases, nil
}
