package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/worldradio/newsroom-go/internal/cache"
	"github.com/worldradio/newsroom-go/internal/config"
	"github.com/worldradio/newsroom-go/internal/crypto"
	"github.com/worldradio/newsroom-go/internal/news"
	"github.com/worldradio/newsroom-go/internal/repository"
	"github.com/worldradio/newsroom-go/internal/server"
	"github.com/worldradio/newsroom-go/internal/service"
)

func runServe(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.UsesDefaultSecret() {
		slog.Warn("JWT_SECRET not set, signing tokens with the built-in default secret")
	}

	tokens := crypto.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	newsClient := news.NewClient(cfg.NewsAPIBaseURL, cfg.NewsAPIKey, cfg.NewsTimeout)
	if !newsClient.KeyConfigured() {
		slog.Warn("NEWSAPI_KEY not set, upstream requests will be rejected")
	}

	deps := server.Deps{
		News:          service.NewNewsService(newsClient, cache.New(), cfg.NewsCacheTTL),
		Tokens:        tokens,
		KeyConfigured: newsClient.KeyConfigured(),
		CORSOrigins:   cfg.CORSAllowedOrigins,
	}

	// Auth and favorites routes are only mounted when the database is reachable.
	ctx := context.Background()
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, auth and favorites routes disabled", "error", err)
	} else {
		defer db.Close()

		if err := repository.Migrate(db); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}

		deps.Auth = service.NewAuthService(repository.NewUserRepository(db), tokens)
		deps.Favorites = service.NewFavoriteService(repository.NewFavoriteRepository(db))

		if _, err := deps.Auth.EnsureDefaultAdmin(ctx); err != nil {
			return fmt.Errorf("seeding default admin: %w", err)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runMigrate(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.Migrate(db); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	slog.Info("migrations applied")
	return nil
}
