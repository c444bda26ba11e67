package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/pantryplan/pantryplan-backend/internal/config"
	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// sessionRepo defines the session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, tokenHash string, expiresAt time.Time) (*domain.Session, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// sessionManager defines the session token management interface needed by auth service.
type sessionManager interface {
	Generate() (token string, idHash string, expiresAt time.Time, err error)
	Validate(token string) (idHash string, err error)
}

// Service implements household auth operations.
type Service struct {
	log      *slog.Logger
	sessions sessionRepo
	tokens   sessionManager
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	sessions sessionRepo,
	tokens sessionManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		sessions: sessions,
		tokens:   tokens,
		cfg:      cfg,
	}
}
