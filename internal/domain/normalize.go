package domain

import "strings"

// keySeparator joins the normalized name and the unit inside a shopping key.
const keySeparator = "|"

// Normalize prepares an item name for equality comparison: it trims
// leading/trailing whitespace and lowercases the result. Used for pantry
// exclusion matching, aggregation keys, and hidden-key lookup.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TrimUnit canonicalizes a unit label. Units are only trimmed, never
// case-folded: "G" and "g" are distinct units on purpose.
func TrimUnit(unit string) string {
	return strings.TrimSpace(unit)
}

// EntryKey returns the identity of a shopping-list entry: the pair of
// normalized name and trimmed unit. Entries with the same normalized name
// but different units never merge.
func EntryKey(name, unit string) string {
	return Normalize(name) + keySeparator + TrimUnit(unit)
}
