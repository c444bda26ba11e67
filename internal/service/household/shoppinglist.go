package household

import (
	"context"
	"slices"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
	"github.com/pantryplan/pantryplan-backend/internal/shopping"
)

// ShoppingList derives the current purchasable list from the document.
func (s *Service) ShoppingList(ctx context.Context) ([]shopping.Entry, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return shopping.Build(doc), nil
}

// HideEntry marks one shopping list row as already covered. The underlying
// recipes and extras stay untouched, so the row can come back.
func (s *Service) HideEntry(ctx context.Context, input HideEntryInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := domain.EntryKey(input.Name, input.Unit)
	return s.update(ctx, func(doc *domain.Document) error {
		if !slices.Contains(doc.HiddenShoppingKeys, key) {
			doc.HiddenShoppingKeys = append(doc.HiddenShoppingKeys, key)
		}
		return nil
	})
}

// RestoreAll clears the hidden set, bringing back every hidden row.
func (s *Service) RestoreAll(ctx context.Context) (*domain.Document, error) {
	return s.update(ctx, func(doc *domain.Document) error {
		doc.HiddenShoppingKeys = []string{}
		return nil
	})
}
