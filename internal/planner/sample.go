// Package planner picks meals for the week.
package planner

import (
	"math/rand/v2"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// Sample picks n distinct recipes uniformly at random and returns them as
// picked meals. When n meets or exceeds the recipe count every recipe is
// picked once. n <= 0 yields an empty plan.
func Sample(recipes []domain.Recipe, n int) []domain.PickedMeal {
	if n <= 0 || len(recipes) == 0 {
		return []domain.PickedMeal{}
	}
	if n > len(recipes) {
		n = len(recipes)
	}

	picked := make([]domain.PickedMeal, 0, n)
	for _, i := range rand.Perm(len(recipes))[:n] {
		picked = append(picked, domain.PickedMeal{
			RecipeID: recipes[i].ID,
			Name:     recipes[i].Name,
		})
	}
	return picked
}
