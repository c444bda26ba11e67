package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/pantryplan/pantryplan-backend/internal/adapter/postgres"
	"github.com/pantryplan/pantryplan-backend/internal/adapter/postgres/document"
	"github.com/pantryplan/pantryplan-backend/internal/adapter/postgres/session"
	sessionauth "github.com/pantryplan/pantryplan-backend/internal/auth"
	"github.com/pantryplan/pantryplan-backend/internal/config"
	authsvc "github.com/pantryplan/pantryplan-backend/internal/service/auth"
	householdsvc "github.com/pantryplan/pantryplan-backend/internal/service/household"
	"github.com/pantryplan/pantryplan-backend/internal/transport/middleware"
	"github.com/pantryplan/pantryplan-backend/internal/transport/rest"
	"github.com/pantryplan/pantryplan-backend/migrations"
)

// Run is the application entry point. It loads configuration, applies
// pending migrations, wires repositories and services, and serves HTTP
// until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	docRepo := document.New(pool)
	sessionRepo := session.New(pool)
	txManager := postgres.NewTxManager(pool)

	sessions := sessionauth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionTTL)

	authService := authsvc.NewService(logger, sessionRepo, sessions, cfg.Auth)
	householdService := householdsvc.NewService(logger, docRepo, txManager, cfg.Household.Key)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := newRouter(logger, cfg, pool, authService, householdService, rateLimiter)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// newRouter assembles the HTTP routes and middleware chain.
func newRouter(
	logger *slog.Logger,
	cfg *config.Config,
	pool *pgxpool.Pool,
	authService *authsvc.Service,
	householdService *householdsvc.Service,
	rateLimiter *middleware.RateLimiter,
) http.Handler {
	authHandler := rest.NewAuthHandler(authService, logger, cfg.Auth.SessionCookieName)
	stateHandler := rest.NewStateHandler(householdService, logger)
	healthHandler := rest.NewHealthHandler(pool, Version)

	requireSession := middleware.Auth(authService, cfg.Auth.SessionCookieName)
	limitLogin := rateLimiter.Limit(cfg.Auth.LoginRatePerMin)

	mux := http.NewServeMux()

	mux.Handle("GET /api/state", requireSession(http.HandlerFunc(stateHandler.Get)))
	mux.Handle("POST /api/state", requireSession(http.HandlerFunc(stateHandler.Replace)))

	mux.Handle("POST /api/auth/login", limitLogin(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /live", healthHandler.Live)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)

	return chain(mux)
}

// migrate applies pending goose migrations from the embedded FS.
// goose requires database/sql, so a short-lived connection is opened
// alongside the pgx pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		slog.Info("applied migration", slog.String("source", r.Source.Path))
	}

	return nil
}
