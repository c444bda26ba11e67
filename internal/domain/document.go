package domain

// Ingredient is one line of a recipe. Qty is a non-negative real number;
// Unit is a free-text label whose exact spelling and casing is part of its
// identity for aggregation.
type Ingredient struct {
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
}

// Recipe is owned by the Document. Recipes are never edited in place:
// changing one means deleting it and adding a new one.
type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
	Notes       string       `json:"notes,omitempty"`
}

// PickedMeal references a recipe selected for the current plan. Name is a
// denormalized copy of the recipe name at pick time, so the plan stays
// readable even after the recipe is deleted.
type PickedMeal struct {
	RecipeID string `json:"recipeId"`
	Name     string `json:"name"`
}

// Document is the single shared household record. There is exactly one per
// household; every device loads and saves it wholesale. Its JSON tags define
// both the persisted shape and the wire shape of the state API.
//
// PantryText holds newline-delimited exclusions ("things we already have");
// ExtrasText holds newline-delimited manually added purchase items. They are
// deliberately separate fields.
type Document struct {
	Recipes            []Recipe     `json:"recipes"`
	PantryText         string       `json:"pantryText"`
	ExtrasText         string       `json:"extrasText"`
	Picked             []PickedMeal `json:"picked"`
	HiddenShoppingKeys []string     `json:"hiddenShoppingKeys,omitempty"`
}

// defaultPantryText seeds the pantry with an illustrative example on the
// first-ever load.
const defaultPantryText = "salt\nolive oil\nblack pepper"

// NewDefaultDocument returns the Document created on first access.
func NewDefaultDocument() *Document {
	return &Document{
		Recipes:    []Recipe{},
		PantryText: defaultPantryText,
		ExtrasText: "",
		Picked:     []PickedMeal{},
	}
}

// EnsureDefaults migrates older persisted shapes in place: documents written
// before hidden keys existed get an empty set, and documents from revisions
// that reused the pantry field get an empty extras list. Applied once at load
// time, never lazily per access.
func (d *Document) EnsureDefaults() {
	if d.Recipes == nil {
		d.Recipes = []Recipe{}
	}
	if d.Picked == nil {
		d.Picked = []PickedMeal{}
	}
	if d.HiddenShoppingKeys == nil {
		d.HiddenShoppingKeys = []string{}
	}
}

// Clone returns a deep copy of the document. Mutating the copy never
// affects the original.
func (d *Document) Clone() *Document {
	out := &Document{
		PantryText: d.PantryText,
		ExtrasText: d.ExtrasText,
	}

	out.Recipes = make([]Recipe, len(d.Recipes))
	for i, r := range d.Recipes {
		cp := r
		cp.Ingredients = make([]Ingredient, len(r.Ingredients))
		copy(cp.Ingredients, r.Ingredients)
		out.Recipes[i] = cp
	}

	out.Picked = make([]PickedMeal, len(d.Picked))
	copy(out.Picked, d.Picked)

	if d.HiddenShoppingKeys != nil {
		out.HiddenShoppingKeys = make([]string, len(d.HiddenShoppingKeys))
		copy(out.HiddenShoppingKeys, d.HiddenShoppingKeys)
	}

	return out
}

// FindRecipe returns the recipe with the given id, or nil when it does not
// exist (deleted recipes simply drop out of the plan).
func (d *Document) FindRecipe(id string) *Recipe {
	for i := range d.Recipes {
		if d.Recipes[i].ID == id {
			return &d.Recipes[i]
		}
	}
	return nil
}
