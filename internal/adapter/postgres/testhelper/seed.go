package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// UniqueKey returns a short unique string for generating non-conflicting
// household keys and token hashes.
func UniqueKey(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedDocument stores a small but fully populated household document under
// the given key and returns it.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, key string) *domain.Document {
	t.Helper()
	ctx := context.Background()

	doc := &domain.Document{
		Recipes: []domain.Recipe{
			{
				ID:   uuid.New().String(),
				Name: "Soup",
				Ingredients: []domain.Ingredient{
					{Name: "onion", Qty: 2, Unit: "pcs"},
					{Name: "carrot", Qty: 3, Unit: "pcs"},
				},
			},
		},
		PantryText:         "salt\nolive oil",
		ExtrasText:         "coffee",
		Picked:             []domain.PickedMeal{},
		HiddenShoppingKeys: []string{},
	}
	doc.Picked = []domain.PickedMeal{{RecipeID: doc.Recipes[0].ID, Name: "Soup"}}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument marshal: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO household_documents (key, doc, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		key, raw,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument insert: %v", err)
	}

	return doc
}

// SeedSession inserts a live session row with the given token hash and TTL
// and returns its ID.
func SeedSession(t *testing.T, pool *pgxpool.Pool, tokenHash string, ttl time.Duration) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO sessions (token_hash, expires_at)
		 VALUES ($1, $2)
		 RETURNING id`,
		tokenHash, time.Now().UTC().Add(ttl),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return id
}
