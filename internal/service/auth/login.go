package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// Login authenticates the household with the shared password.
// Returns ErrUnauthorized if the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, idHash, expiresAt, err := s.tokens.Generate()
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	if _, err := s.sessions.Create(ctx, idHash, expiresAt); err != nil {
		return nil, fmt.Errorf("auth.Login store session: %w", err)
	}

	s.log.InfoContext(ctx, "household logged in")

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
