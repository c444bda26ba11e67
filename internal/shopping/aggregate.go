// Package shopping implements the shopping-list aggregation engine: pure
// functions that fold the household document into a deduplicated, sorted
// purchase list. Everything here is side-effect free and safe to re-run on
// every state change.
package shopping

import (
	"slices"
	"strings"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// Entry is one row of the shopping list. Its identity is the pair
// (Normalize(Name), Unit): same normalized name with a different unit is a
// different row.
type Entry struct {
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
}

// ParseLines splits newline-delimited free text into trimmed, non-blank
// lines. Used for both the pantry exclusion text and the extras text.
func ParseLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Aggregate folds the picked meals' recipes into a deduplicated quantity
// map and returns it sorted by display name.
//
// Picked meals whose recipe no longer exists are skipped silently: deleted
// recipes simply drop from the plan. Ingredients whose normalized name is
// blank or appears in the exclusion list are skipped. The display name of a
// row is the first-seen trimmed spelling; quantities of later contributions
// are added to the running total. Quantities ≤ 0 are not filtered here;
// that validation happens at recipe-creation time.
func Aggregate(recipes []domain.Recipe, picked []domain.PickedMeal, exclusions []string) []Entry {
	excluded := make(map[string]struct{}, len(exclusions))
	for _, line := range exclusions {
		if n := domain.Normalize(line); n != "" {
			excluded[n] = struct{}{}
		}
	}

	byID := make(map[string]*domain.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].ID] = &recipes[i]
	}

	totals := make(map[string]*Entry)
	for _, meal := range picked {
		recipe, ok := byID[meal.RecipeID]
		if !ok {
			continue
		}
		for _, ing := range recipe.Ingredients {
			name := domain.Normalize(ing.Name)
			if name == "" {
				continue
			}
			if _, skip := excluded[name]; skip {
				continue
			}

			key := domain.EntryKey(ing.Name, ing.Unit)
			if e, ok := totals[key]; ok {
				e.Qty += ing.Qty
				continue
			}
			totals[key] = &Entry{
				Name: strings.TrimSpace(ing.Name),
				Qty:  ing.Qty,
				Unit: domain.TrimUnit(ing.Unit),
			}
		}
	}

	return sortEntries(totals)
}

// sortEntries flattens the map and orders rows by display name ascending,
// with the unit as a deterministic tiebreak for equal names.
func sortEntries(totals map[string]*Entry) []Entry {
	out := make([]Entry, 0, len(totals))
	for _, e := range totals {
		out = append(out, *e)
	}
	sortByName(out)
	return out
}

func sortByName(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Unit, b.Unit)
	})
}
