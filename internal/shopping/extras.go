package shopping

import (
	"strings"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// MergeExtras merges manually entered free-text items into the aggregated
// list. Extras are unit-less: each occurrence counts as quantity 1 under the
// key (normalized name, ""). An extra merges with an aggregated row only if
// that row also has an empty unit. Repeated identical extras accumulate as
// an integer count on one row. The result is re-sorted by display name.
func MergeExtras(base []Entry, extras []string) []Entry {
	merged := make(map[string]*Entry, len(base))
	for i := range base {
		e := base[i]
		merged[domain.EntryKey(e.Name, e.Unit)] = &e
	}

	for _, raw := range extras {
		name := strings.TrimSpace(raw)
		if domain.Normalize(name) == "" {
			continue
		}
		key := domain.EntryKey(name, "")
		if e, ok := merged[key]; ok {
			e.Qty++
			continue
		}
		merged[key] = &Entry{Name: name, Qty: 1, Unit: ""}
	}

	return sortEntries(merged)
}
