package shopping

import (
	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// Visible filters out entries whose key is in the hidden set. Hiding never
// deletes the underlying source data: clearing the hidden set restores the
// exact list that hiding suppressed.
func Visible(entries []Entry, hiddenKeys []string) []Entry {
	if len(hiddenKeys) == 0 {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}

	hidden := make(map[string]struct{}, len(hiddenKeys))
	for _, k := range hiddenKeys {
		hidden[k] = struct{}{}
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := hidden[domain.EntryKey(e.Name, e.Unit)]; ok {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Build derives the full purchasable view from a document: aggregate the
// picked recipes minus pantry exclusions, merge the manual extras, then
// apply the hidden-key filter.
func Build(doc *domain.Document) []Entry {
	entries := Aggregate(doc.Recipes, doc.Picked, ParseLines(doc.PantryText))
	entries = MergeExtras(entries, ParseLines(doc.ExtrasText))
	return Visible(entries, doc.HiddenShoppingKeys)
}
