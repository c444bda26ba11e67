package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// Logout revokes the session carried by the given token. It is idempotent:
// an invalid token or an already-revoked session is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	idHash, err := s.tokens.Validate(token)
	if err != nil {
		return nil
	}

	if err := s.sessions.RevokeByHash(ctx, idHash); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "household logged out")
	return nil
}

// Validate checks that the token is well formed and its session is still
// live in the database. Returns ErrUnauthorized otherwise.
func (s *Service) Validate(ctx context.Context, token string) error {
	idHash, err := s.tokens.Validate(token)
	if err != nil {
		return domain.ErrUnauthorized
	}

	if _, err := s.sessions.GetByHash(ctx, idHash); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.Validate: %w", err)
	}

	return nil
}

// CleanupExpiredSessions removes expired and revoked sessions from the
// database. Returns the number of rows deleted. This is a maintenance
// operation.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	count, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int64("count", count))
	}

	return count, nil
}
