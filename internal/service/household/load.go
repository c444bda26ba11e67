package household

import (
	"context"
	"errors"
	"fmt"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// Load returns the current household document. On the very first load it
// seeds a default document (with an example pantry) and persists it.
func (s *Service) Load(ctx context.Context) (*domain.Document, error) {
	doc, err := s.docs.Get(ctx, s.key)
	if err == nil {
		doc.EnsureDefaults()
		return doc, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("load document: %w", err)
	}

	doc = domain.NewDefaultDocument()
	if err := s.docs.Set(ctx, s.key, doc); err != nil {
		return nil, fmt.Errorf("seed document: %w", err)
	}

	s.log.InfoContext(ctx, "seeded first household document")
	return doc, nil
}

// Replace stores the given snapshot as the new household document,
// overwriting whatever is there. Last write wins.
func (s *Service) Replace(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if doc == nil {
		return nil, domain.NewValidationError("document", "required")
	}

	doc.EnsureDefaults()
	if err := s.docs.Set(ctx, s.key, doc); err != nil {
		return nil, fmt.Errorf("replace document: %w", err)
	}

	return doc, nil
}
