//go:build e2e

package e2e_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// TestE2E_State_FirstLoadSeedsDefaults verifies the very first GET creates
// and persists the default document with the example pantry text.
func TestE2E_State_FirstLoadSeedsDefaults(t *testing.T) {
	ts := setupTestServer(t)
	ts.login(t)

	resp := ts.get(t, "/api/state")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "salt\nolive oil\nblack pepper", body["pantryText"])
	assert.Empty(t, body["recipes"])
	assert.Empty(t, body["picked"])

	// The seed was persisted, not just returned.
	var count int
	err := ts.Pool.QueryRow(context.Background(),
		"SELECT count(*) FROM household_documents WHERE key = $1", ts.HouseholdKey,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// TestE2E_State_ReplaceRoundtrip verifies POST /api/state persists the
// document wholesale and GET returns it unchanged.
func TestE2E_State_ReplaceRoundtrip(t *testing.T) {
	ts := setupTestServer(t)
	ts.login(t)

	doc := map[string]any{
		"recipes": []any{
			map[string]any{
				"id":   "r1",
				"name": "Pilaf",
				"ingredients": []any{
					map[string]any{"name": "rice", "qty": 200, "unit": "g"},
					map[string]any{"name": "onion", "qty": 1, "unit": "pcs"},
				},
				"notes": "weeknight staple",
			},
		},
		"pantryText":         "salt",
		"extrasText":         "coffee",
		"picked":             []any{map[string]any{"recipeId": "r1", "name": "Pilaf"}},
		"hiddenShoppingKeys": []any{},
	}

	postResp := ts.postJSON(t, "/api/state", doc)
	drainAndClose(postResp)
	require.Equal(t, http.StatusOK, postResp.StatusCode)

	getResp := ts.get(t, "/api/state")
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	body := decodeBody(t, getResp)
	assert.Equal(t, "salt", body["pantryText"])
	assert.Equal(t, "coffee", body["extrasText"])

	recipes, ok := body["recipes"].([]any)
	require.True(t, ok)
	require.Len(t, recipes, 1)
	recipe := recipes[0].(map[string]any)
	assert.Equal(t, "Pilaf", recipe["name"])
	assert.Equal(t, "weeknight staple", recipe["notes"])
}

// TestE2E_State_LastWriteWins verifies two sequential replaces leave only
// the second one.
func TestE2E_State_LastWriteWins(t *testing.T) {
	ts := setupTestServer(t)
	ts.login(t)

	first := map[string]any{
		"recipes": []any{}, "pantryText": "first", "extrasText": "",
		"picked": []any{}, "hiddenShoppingKeys": []any{},
	}
	second := map[string]any{
		"recipes": []any{}, "pantryText": "second", "extrasText": "",
		"picked": []any{}, "hiddenShoppingKeys": []any{},
	}

	resp1 := ts.postJSON(t, "/api/state", first)
	drainAndClose(resp1)
	require.Equal(t, http.StatusOK, resp1.StatusCode)

	resp2 := ts.postJSON(t, "/api/state", second)
	drainAndClose(resp2)
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	getResp := ts.get(t, "/api/state")
	defer getResp.Body.Close()
	body := decodeBody(t, getResp)
	assert.Equal(t, "second", body["pantryText"])
}

// TestE2E_State_MigratesOlderShape verifies a document persisted before
// hiddenShoppingKeys and extrasText existed comes back with defaults.
func TestE2E_State_MigratesOlderShape(t *testing.T) {
	ts := setupTestServer(t)
	ts.login(t)

	_, err := ts.Pool.Exec(context.Background(),
		`INSERT INTO household_documents (key, doc, updated_at)
		 VALUES ($1, '{"recipes": [], "pantryText": "flour", "picked": []}'::jsonb, now())
		 ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc`,
		ts.HouseholdKey,
	)
	require.NoError(t, err)

	resp := ts.get(t, "/api/state")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc domain.Document
	require.NoError(t, jsonDecode(resp, &doc))
	assert.Equal(t, "flour", doc.PantryText)
	assert.Equal(t, "", doc.ExtrasText)
	assert.NotNil(t, doc.Recipes)
	assert.NotNil(t, doc.Picked)
}

// TestE2E_State_BadBodyRejected verifies malformed JSON gets 400.
func TestE2E_State_BadBodyRejected(t *testing.T) {
	ts := setupTestServer(t)
	ts.login(t)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/state", badJSONBody())
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
