// Package csvtext tokenizes CSV exported by HR tools. It is deliberately more
// forgiving than encoding/csv: commas and semicolons both split fields in the
// same document, quotes may open mid-field, an unterminated quote closes at end
// of input, and ragged rows are padded or cut to the header width.
package csvtext

import (
	"strings"
)

const bom = "\uFEFF"

// Parse splits text into records keyed by the first non-blank row. Fewer than
// two non-blank rows yields nil, meaning there is nothing to import.
func Parse(text string) []Record {
	rows := splitRows(normalizeNewlines(strings.TrimPrefix(text, bom)))
	if len(rows) < 2 {
		return nil
	}

	headers := rows[0]
	records := make([]Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		records = append(records, newRecord(headers, row))
	}

	return records
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitRows scans s rune by rune and returns the non-blank rows with every
// field trimmed.
func splitRows(s string) [][]string {
	var (
		rows     [][]string
		current  []string
		field    strings.Builder
		inQuotes bool
	)

	endField := func() {
		current = append(current, strings.TrimSpace(field.String()))
		field.Reset()
	}

	endRow := func() {
		endField()

		if !blank(current) {
			rows = append(rows, current)
		}

		current = nil
	}

	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if inQuotes {
			switch {
			case c == '"' && i+1 < len(runes) && runes[i+1] == '"':
				field.WriteRune('"')
				i++
			case c == '"':
				inQuotes = false
			default:
				field.WriteRune(c)
			}

			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',', ';':
			endField()
		case '\n':
			endRow()
		default:
			field.WriteRune(c)
		}
	}

	// Whatever is buffered forms the last row, even inside an unclosed quote.
	endRow()

	return rows
}

func blank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}

	return true
}
