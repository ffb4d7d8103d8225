// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"bookingsite/internal/backend"
	"bookingsite/internal/cache"
	"bookingsite/internal/config"
	"bookingsite/internal/database"
	"bookingsite/internal/engine"
	"bookingsite/internal/handlers"
	"bookingsite/internal/middleware"
	"bookingsite/internal/router"
	"bookingsite/internal/session"
	"bookingsite/internal/store"
)

func newServeCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			slog.SetDefault(newLogger(os.Stdout, cfg.IsDev(), root.logLevel))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

// serve wires every dependency and runs the server until ctx is done.
// PostgreSQL and Valkey are optional in development: without them the
// page cache and visitor preferences are disabled.
func serve(ctx context.Context, cfg *config.Config) error {
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"backend", cfg.BackendURL,
	)

	eng, err := engine.New(cfg.BookingBaseURL)
	if err != nil {
		return fmt.Errorf("initialize engine: %w", err)
	}
	client := backend.New(cfg.BackendURL, cfg.BackendTimeout)

	valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyAddr(), cfg.ValkeyPassword, cfg.ValkeyDB)
	if err != nil {
		if !cfg.IsDev() {
			return fmt.Errorf("connect to valkey: %w", err)
		}
		slog.Warn("valkey unavailable, page cache and preferences disabled", "error", err)
		valkeyClient = nil
	} else {
		defer valkeyClient.Close()
	}

	db, err := connectDatabase(ctx, cfg)
	if err != nil {
		if !cfg.IsDev() {
			return err
		}
		slog.Warn("database unavailable, preferences disabled", "error", err)
		db = nil
	} else {
		defer db.Close()
	}

	var pageCache handlers.PageCache
	if valkeyClient != nil {
		pageCache = cache.NewSiteCache(valkeyClient, cfg.PageCacheTTL)
	}

	deps := router.Deps{
		Public:        handlers.NewPublic(eng, client, pageCache),
		Preferences:   newPreferences(valkeyClient, db, !cfg.IsDev()),
		SecureCookies: !cfg.IsDev(),
	}
	if cfg.RateLimitRPS > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute)
		defer rl.Stop()
		deps.RateLimiter = rl
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.BackendTimeout + 20*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// connectDatabase opens PostgreSQL and applies pending migrations.
func connectDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// newPreferences returns the preference handlers, or nil when either
// backing service is missing.
func newPreferences(valkeyClient *redis.Client, db *sql.DB, secure bool) *handlers.Preferences {
	if valkeyClient == nil || db == nil {
		return nil
	}
	return handlers.NewPreferences(store.NewPreferencesStore(db), session.NewStore(valkeyClient, secure))
}
