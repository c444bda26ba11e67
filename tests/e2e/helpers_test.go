//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pantryplan/pantryplan-backend/internal/adapter/postgres"
	"github.com/pantryplan/pantryplan-backend/internal/adapter/postgres/document"
	"github.com/pantryplan/pantryplan-backend/internal/adapter/postgres/session"
	"github.com/pantryplan/pantryplan-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/pantryplan/pantryplan-backend/internal/auth"
	"github.com/pantryplan/pantryplan-backend/internal/config"
	authsvc "github.com/pantryplan/pantryplan-backend/internal/service/auth"
	householdsvc "github.com/pantryplan/pantryplan-backend/internal/service/household"
	"github.com/pantryplan/pantryplan-backend/internal/transport/middleware"
	"github.com/pantryplan/pantryplan-backend/internal/transport/rest"
)

const (
	testPassword   = "hunter2"
	testCookieName = "pantryplan_session"
)

// testServer wraps the full-stack HTTP server for E2E tests. Each server
// gets its own household key so tests can share the DB container.
type testServer struct {
	URL          string
	Client       *http.Client
	Pool         *pgxpool.Pool
	HouseholdKey string
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	docRepo := document.New(pool)
	sessionRepo := session.New(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	authCfg := config.AuthConfig{
		PasswordHash:      string(hash),
		SessionSecret:     "test-secret-at-least-32-chars-long!!",
		SessionIssuer:     "test-issuer",
		SessionTTL:        time.Hour,
		SessionCookieName: testCookieName,
		LoginRatePerMin:   1000,
	}

	sessions := authpkg.NewSessionManager(authCfg.SessionSecret, authCfg.SessionIssuer, authCfg.SessionTTL)

	authService := authsvc.NewService(logger, sessionRepo, sessions, authCfg)

	householdKey := testhelper.UniqueKey("e2e")
	householdService := householdsvc.NewService(logger, docRepo, txm, householdKey)

	authHandler := rest.NewAuthHandler(authService, logger, testCookieName)
	stateHandler := rest.NewStateHandler(householdService, logger)
	healthHandler := rest.NewHealthHandler(pool, "test-version")

	requireSession := middleware.Auth(authService, testCookieName)

	mux := http.NewServeMux()
	mux.Handle("GET /api/state", requireSession(http.HandlerFunc(stateHandler.Get)))
	mux.Handle("POST /api/state", requireSession(http.HandlerFunc(stateHandler.Replace)))
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /live", healthHandler.Live)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	// The session travels in a cookie, so the client needs a jar.
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testServer{
		URL:          srv.URL,
		Client:       &http.Client{Jar: jar, Timeout: 10 * time.Second},
		Pool:         pool,
		HouseholdKey: householdKey,
	}
}

// postJSON sends a JSON POST and returns the response.
func (ts *testServer) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(jsonBody))
	require.NoError(t, err)
	return resp
}

// get sends a GET and returns the response.
func (ts *testServer) get(t *testing.T, path string) *http.Response {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	return resp
}

// login authenticates the test client; the session cookie lands in the jar.
func (ts *testServer) login(t *testing.T) {
	t.Helper()

	resp := ts.postJSON(t, "/api/auth/login", map[string]string{"password": testPassword})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// decodeBody reads and decodes the JSON response body into a map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// drainAndClose discards the body so the connection can be reused.
func drainAndClose(resp *http.Response) {
	io.Copy(io.Discard, resp.Body) //nolint:errcheck
	resp.Body.Close()
}

// jsonDecode decodes the response body into v.
func jsonDecode(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

// badJSONBody returns a deliberately malformed JSON payload.
func badJSONBody() io.Reader {
	return strings.NewReader("{not json")
}
