package household

import (
	"context"
	"log/slog"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
	"github.com/pantryplan/pantryplan-backend/internal/planner"
)

// PickMeals replaces the current plan with a random sample of recipes.
// Starting a new plan resets the hidden shopping rows: a fresh plan gets a
// fresh list.
func (s *Service) PickMeals(ctx context.Context, input PickMealsInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.update(ctx, func(doc *domain.Document) error {
		doc.Picked = planner.Sample(doc.Recipes, input.Count)
		doc.HiddenShoppingKeys = []string{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "meals picked",
		slog.Int("requested", input.Count),
		slog.Int("picked", len(doc.Picked)),
	)

	return doc, nil
}

// ClearPicked empties the current meal plan.
func (s *Service) ClearPicked(ctx context.Context) (*domain.Document, error) {
	return s.update(ctx, func(doc *domain.Document) error {
		doc.Picked = []domain.PickedMeal{}
		return nil
	})
}
