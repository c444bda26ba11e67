package household

import (
	"context"
	"strings"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// SetPantryText replaces the newline-delimited pantry exclusion text.
// Blank lines and casing are handled at aggregation time, not here.
func (s *Service) SetPantryText(ctx context.Context, text string) (*domain.Document, error) {
	return s.update(ctx, func(doc *domain.Document) error {
		doc.PantryText = text
		return nil
	})
}

// SetExtrasText replaces the newline-delimited extras text.
func (s *Service) SetExtrasText(ctx context.Context, text string) (*domain.Document, error) {
	return s.update(ctx, func(doc *domain.Document) error {
		doc.ExtrasText = text
		return nil
	})
}

// AddExtra appends one item line to the extras text.
func (s *Service) AddExtra(ctx context.Context, input AddExtraInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	line := strings.TrimSpace(input.Name)
	return s.update(ctx, func(doc *domain.Document) error {
		if doc.ExtrasText == "" {
			doc.ExtrasText = line
		} else {
			doc.ExtrasText += "\n" + line
		}
		return nil
	})
}
