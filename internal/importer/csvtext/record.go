package csvtext

import "maps"

// Record is one data row keyed by header. Headers keep their first position;
// when a header repeats, the last cell wins.
type Record struct {
	headers []string
	cells   map[string]string
}

func newRecord(headers, row []string) Record {
	r := Record{
		headers: make([]string, 0, len(headers)),
		cells:   make(map[string]string, len(headers)),
	}

	for i, h := range headers {
		if _, seen := r.cells[h]; !seen {
			r.headers = append(r.headers, h)
		}

		cell := ""
		if i < len(row) {
			cell = row[i]
		}

		r.cells[h] = cell
	}

	return r
}

// Headers returns the distinct headers in column order.
func (r Record) Headers() []string {
	return append([]string(nil), r.headers...)
}

// Get returns the cell under header, or "" when the header is absent.
func (r Record) Get(header string) string {
	return r.cells[header]
}

// Len returns the number of distinct headers.
func (r Record) Len() int {
	return len(r.headers)
}

// Map returns a copy of the record as a header -> cell map.
func (r Record) Map() map[string]string {
	return maps.Clone(r.cells)
}
