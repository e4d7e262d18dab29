// The clinic command runs the REST API backend. It starts, and keeps
// serving, whether or not the database is reachable: content endpoints
// degrade to built-in fallback data instead of failing.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ruslanamed/clinic-go/internal/cache"
	"github.com/ruslanamed/clinic-go/internal/config"
	"github.com/ruslanamed/clinic-go/internal/handler"
	"github.com/ruslanamed/clinic-go/internal/health"
	"github.com/ruslanamed/clinic-go/internal/logging"
	"github.com/ruslanamed/clinic-go/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.IsDevelopment())

	// The pool connects lazily, so a down database does not block startup.
	var queries *store.Queries
	var pinger health.Pinger
	if cfg.DatabaseURL != "" {
		db, err := store.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("opening database pool: %w", err)
		}
		defer db.Close()

		queries = store.New(db)
		pinger = db

		initCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := queries.Init(initCtx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
			logger.Warn("database init failed, serving fallback content", "error", err)
		} else {
			logger.Info("database ready")
		}
		cancel()
	} else {
		logger.Warn("no database configured, serving fallback content only")
	}

	respCache := cache.New(cache.Options{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: time.Duration(cfg.CacheTTL) * time.Second,
	})
	defer func() {
		if err := respCache.Close(); err != nil {
			logger.Error("closing cache", "error", err)
		}
	}()

	monitor := health.NewMonitor(pinger, logger)
	if err := monitor.Start(); err != nil {
		return fmt.Errorf("starting health monitor: %w", err)
	}
	defer monitor.Stop()

	var storeIface handler.Store
	if queries != nil {
		storeIface = queries
	}
	h := handler.New(storeIface, respCache, monitor, cfg)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           h.Routes(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
