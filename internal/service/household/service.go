// Package household implements the meal-planning operations on the single
// shared household document. Every mutation loads the current snapshot,
// applies the change and writes the full snapshot back inside one
// transaction, so concurrent writers serialize at the database.
package household

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// documentRepo defines the document repository interface needed by household service.
type documentRepo interface {
	Get(ctx context.Context, key string) (*domain.Document, error)
	Set(ctx context.Context, key string, doc *domain.Document) error
}

// txManager defines the transaction manager interface needed by household service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides household document operations.
type Service struct {
	log  *slog.Logger
	docs documentRepo
	tx   txManager
	key  string
}

// NewService creates a new household service for the given document key.
func NewService(
	logger *slog.Logger,
	docs documentRepo,
	tx txManager,
	key string,
) *Service {
	return &Service{
		log:  logger.With("service", "household"),
		docs: docs,
		tx:   tx,
		key:  key,
	}
}

// loadOrDefault fetches the current snapshot, falling back to a fresh
// default document when none has been saved yet.
func (s *Service) loadOrDefault(ctx context.Context) (*domain.Document, error) {
	doc, err := s.docs.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewDefaultDocument(), nil
		}
		return nil, fmt.Errorf("load document: %w", err)
	}
	doc.EnsureDefaults()
	return doc, nil
}

// update applies mutate to the current snapshot and persists the result,
// all inside one transaction.
func (s *Service) update(ctx context.Context, mutate func(doc *domain.Document) error) (*domain.Document, error) {
	var out *domain.Document

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		doc, err := s.loadOrDefault(ctx)
		if err != nil {
			return err
		}
		if err := mutate(doc); err != nil {
			return err
		}
		if err := s.docs.Set(ctx, s.key, doc); err != nil {
			return fmt.Errorf("save document: %w", err)
		}
		out = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
