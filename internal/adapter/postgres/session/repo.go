// Package session implements the login session repository using PostgreSQL.
// Sessions are looked up by the SHA-256 hash of their token ID; the raw
// token never reaches the database.
package session

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pantryplan/pantryplan-backend/internal/adapter/postgres"
	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

const table = "sessions"

var columns = []string{"id", "token_hash", "expires_at", "created_at", "revoked_at"}

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a new session row for the given token hash.
func (r *Repo) Create(ctx context.Context, tokenHash string, expiresAt time.Time) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Insert(table).
		Columns("token_hash", "expires_at").
		Values(tokenHash, expiresAt.UTC()).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create session query: %w", err)
	}

	session, err := scanSession(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "session", tokenHash)
	}

	return session, nil
}

// GetByHash returns the live session with the given token hash.
// Revoked or expired sessions are treated as absent: domain.ErrNotFound.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"token_hash": tokenHash}).
		Where(sq.Eq{"revoked_at": nil}).
		Where(sq.Gt{"expires_at": time.Now().UTC()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get session query: %w", err)
	}

	session, err := scanSession(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "session", tokenHash)
	}

	return session, nil
}

// RevokeByHash marks the session with the given token hash as revoked.
// Returns domain.ErrNotFound if no live session matches.
func (r *Repo) RevokeByHash(ctx context.Context, tokenHash string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Update(table).
		Set("revoked_at", time.Now().UTC()).
		Where(sq.Eq{"token_hash": tokenHash}).
		Where(sq.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke session query: %w", err)
	}

	ct, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "session", tokenHash)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", tokenHash, domain.ErrNotFound)
	}

	return nil
}

// DeleteExpired removes sessions that are expired or revoked.
// Returns the number of rows deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Delete(table).
		Where(sq.Or{
			sq.LtOrEq{"expires_at": time.Now().UTC()},
			sq.NotEq{"revoked_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired sessions query: %w", err)
	}

	ct, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return ct.RowsAffected(), nil
}

func columnList() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

type row interface {
	Scan(dest ...any) error
}

func scanSession(r row) (*domain.Session, error) {
	var (
		id        uuid.UUID
		tokenHash string
		expiresAt time.Time
		createdAt time.Time
		revokedAt *time.Time
	)

	if err := r.Scan(&id, &tokenHash, &expiresAt, &createdAt, &revokedAt); err != nil {
		return nil, err
	}

	return &domain.Session{
		ID:        id,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: createdAt,
		RevokedAt: revokedAt,
	}, nil
}
