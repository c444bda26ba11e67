package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	key := UniqueKey("smoke")
	SeedDocument(t, pool, key)

	// Verify the document row exists via SELECT.
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM household_documents WHERE key = $1)`,
		key,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("expected document in DB, got error: %v", err)
	}

	if !exists {
		t.Fatal("expected seeded document row to exist")
	}
}
