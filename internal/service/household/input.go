package household

import (
	"math"
	"strings"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// IngredientInput is one ingredient line of a new recipe.
type IngredientInput struct {
	Name string
	Qty  float64
	Unit string
}

// valid reports whether the line is usable: a non-blank name, a finite
// positive quantity and a non-blank unit.
func (i IngredientInput) valid() bool {
	if domain.Normalize(i.Name) == "" {
		return false
	}
	if math.IsNaN(i.Qty) || math.IsInf(i.Qty, 0) || i.Qty <= 0 {
		return false
	}
	return domain.TrimUnit(i.Unit) != ""
}

// AddRecipeInput holds the parameters for adding a recipe.
type AddRecipeInput struct {
	Name        string
	Ingredients []IngredientInput
	Notes       string
}

// Validate checks all fields and collects all errors. Unusable ingredient
// lines are tolerated as long as at least one usable line remains.
func (i AddRecipeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	usable := 0
	for _, ing := range i.Ingredients {
		if ing.valid() {
			usable++
		}
	}
	if usable == 0 {
		errs = append(errs, domain.FieldError{Field: "ingredients", Message: "at least one ingredient with name, positive quantity and unit"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PickMealsInput holds the parameters for sampling a meal plan.
type PickMealsInput struct {
	Count int
}

// Validate checks all fields and collects all errors.
func (i PickMealsInput) Validate() error {
	if i.Count < 0 {
		return domain.NewValidationError("count", "must be non-negative")
	}
	return nil
}

// AddExtraInput holds the parameters for adding a one-off shopping item.
type AddExtraInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i AddExtraInput) Validate() error {
	if domain.Normalize(i.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}

// HideEntryInput holds the parameters for hiding a shopping list row.
type HideEntryInput struct {
	Name string
	Unit string
}

// Validate checks all fields and collects all errors.
func (i HideEntryInput) Validate() error {
	if domain.Normalize(i.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}
