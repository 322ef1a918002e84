// Package datefmt normalizes the numeric date shapes found in Spanish HR exports
// to ISO 8601 (YYYY-MM-DD).
package datefmt

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	dayMonthYear = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})$`)
	isoDate      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Normalize converts D/M/YYYY, D-M-YYYY or D.M.YYYY to YYYY-MM-DD. ISO input is
// returned as is, and so is anything it does not recognize: callers decide
// whether an unknown shape is an error. Blank input returns "".
//
// There is no calendar check; 31/02/2025 becomes 2025-02-31.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	if m := dayMonthYear.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1]))
	}

	return raw
}

// IsISO reports whether s already has the YYYY-MM-DD shape.
func IsISO(s string) bool {
	return isoDate.MatchString(s)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}

	return s
}
