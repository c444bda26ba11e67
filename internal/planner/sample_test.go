package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

func testRecipes(n int) []domain.Recipe {
	recipes := make([]domain.Recipe, n)
	for i := range recipes {
		recipes[i] = domain.Recipe{ID: string(rune('a' + i)), Name: "Recipe " + string(rune('A'+i))}
	}
	return recipes
}

func TestSample_DistinctAndWithinBounds(t *testing.T) {
	t.Parallel()

	recipes := testRecipes(7)

	for range 50 {
		got := Sample(recipes, 3)

		require.Len(t, got, 3)
		seen := map[string]bool{}
		for _, meal := range got {
			assert.False(t, seen[meal.RecipeID], "recipe %s picked twice", meal.RecipeID)
			seen[meal.RecipeID] = true
			assert.NotNil(t, findByID(recipes, meal.RecipeID))
		}
	}
}

func TestSample_ClampsToRecipeCount(t *testing.T) {
	t.Parallel()

	recipes := testRecipes(3)

	got := Sample(recipes, 10)

	require.Len(t, got, 3)
	seen := map[string]bool{}
	for _, meal := range got {
		seen[meal.RecipeID] = true
	}
	assert.Len(t, seen, 3, "every recipe picked exactly once")
}

func TestSample_NonPositiveCount(t *testing.T) {
	t.Parallel()

	recipes := testRecipes(3)

	assert.Empty(t, Sample(recipes, 0))
	assert.Empty(t, Sample(recipes, -1))
}

func TestSample_NoRecipes(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Sample(nil, 4))
}

func TestSample_CarriesRecipeName(t *testing.T) {
	t.Parallel()

	recipes := []domain.Recipe{{ID: "r1", Name: "Soup"}}

	got := Sample(recipes, 1)

	require.Len(t, got, 1)
	assert.Equal(t, domain.PickedMeal{RecipeID: "r1", Name: "Soup"}, got[0])
}

func findByID(recipes []domain.Recipe, id string) *domain.Recipe {
	for i := range recipes {
		if recipes[i].ID == id {
			return &recipes[i]
		}
	}
	return nil
}
