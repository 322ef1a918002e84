package view

import (
	"errors"
	"strings"

	"github.com/MrJamesThe3rd/mobility/internal/importer/datefmt"
)

var errDateFormat = errors.New("use DD/MM/YYYY or YYYY-MM-DD")

// NormalizeDateInput accepts the same shapes as the CSV importer and returns the
// ISO form. Blank input is allowed and stays blank.
func NormalizeDateInput(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	iso := datefmt.Normalize(s)
	if !datefmt.IsISO(iso) {
		return "", errDateFormat
	}

	return iso, nil
}

func validateDateInput(s string) error {
	_, err := NormalizeDateInput(s)
	return err
}
