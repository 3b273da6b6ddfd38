package record

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the records whose display name contains query, ignoring
// case. An empty query matches every record. Order is preserved.
func Filter(records []*FontRecord, query string) []*FontRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return records
	}
	fold := cases.Fold()
	needle := fold.String(query)

	var out []*FontRecord
	for _, r := range records {
		if strings.Contains(fold.String(r.displayName), needle) {
			out = append(out, r)
		}
	}
	return out
}
