package household

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// AddRecipe appends a new recipe to the document. Unusable ingredient lines
// (blank name, non-positive or non-finite quantity, blank unit) are dropped;
// the recipe must keep at least one usable line.
func (s *Service) AddRecipe(ctx context.Context, input AddRecipeInput) (*domain.Recipe, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	recipe := domain.Recipe{
		ID:    uuid.New().String(),
		Name:  strings.TrimSpace(input.Name),
		Notes: strings.TrimSpace(input.Notes),
	}
	for _, ing := range input.Ingredients {
		if !ing.valid() {
			continue
		}
		recipe.Ingredients = append(recipe.Ingredients, domain.Ingredient{
			Name: strings.TrimSpace(ing.Name),
			Qty:  ing.Qty,
			Unit: domain.TrimUnit(ing.Unit),
		})
	}

	_, err := s.update(ctx, func(doc *domain.Document) error {
		doc.Recipes = append(doc.Recipes, recipe)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "recipe added",
		slog.String("recipe_id", recipe.ID),
		slog.String("name", recipe.Name),
	)

	return &recipe, nil
}

// DeleteRecipe removes a recipe and any picked meals referencing it.
// Returns domain.ErrNotFound if no recipe has the given ID.
func (s *Service) DeleteRecipe(ctx context.Context, recipeID string) error {
	_, err := s.update(ctx, func(doc *domain.Document) error {
		if doc.FindRecipe(recipeID) == nil {
			return domain.ErrNotFound
		}

		recipes := doc.Recipes[:0]
		for _, r := range doc.Recipes {
			if r.ID != recipeID {
				recipes = append(recipes, r)
			}
		}
		doc.Recipes = recipes

		picked := doc.Picked[:0]
		for _, m := range doc.Picked {
			if m.RecipeID != recipeID {
				picked = append(picked, m)
			}
		}
		doc.Picked = picked

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "recipe deleted", slog.String("recipe_id", recipeID))
	return nil
}
