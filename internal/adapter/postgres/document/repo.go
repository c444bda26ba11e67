// Package document implements the household document repository using
// PostgreSQL. The whole document is stored as a single JSONB column: reads
// and writes always move the full snapshot, matching the last-write-wins
// replacement model of the sync protocol.
package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pantryplan/pantryplan-backend/internal/adapter/postgres"
	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// Repo provides household document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT doc
FROM household_documents
WHERE key = $1`

const setSQL = `
INSERT INTO household_documents (key, doc, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET doc = EXCLUDED.doc, updated_at = now()`

// Get returns the document stored under the given household key.
// Returns domain.ErrNotFound if no document has been saved yet.
func (r *Repo) Get(ctx context.Context, key string) (*domain.Document, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var raw []byte
	if err := querier.QueryRow(ctx, getSQL, key).Scan(&raw); err != nil {
		return nil, postgres.MapError(err, "document", key)
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("document %s: unmarshal: %w", key, err)
	}

	// Older snapshots may predate some collections.
	doc.EnsureDefaults()

	return &doc, nil
}

// Set stores the full document snapshot under the given household key,
// creating the row on first save and replacing it afterwards.
func (r *Repo) Set(ctx context.Context, key string, doc *domain.Document) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("document %s: marshal: %w", key, err)
	}

	if _, err := querier.Exec(ctx, setSQL, key, raw); err != nil {
		return postgres.MapError(err, "document", key)
	}

	return nil
}
