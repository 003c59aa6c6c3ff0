// Package main is the entry point for the Sushi API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/sushi-api/backend/internal/config"
	"github.com/pkordes/sushi-api/backend/internal/database"
	"github.com/pkordes/sushi-api/backend/internal/handler"
	"github.com/pkordes/sushi-api/backend/internal/middleware"
	"github.com/pkordes/sushi-api/backend/internal/migrate"
	"github.com/pkordes/sushi-api/backend/internal/repo"
	"github.com/pkordes/sushi-api/backend/internal/service"
	"github.com/pkordes/sushi-api/backend/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before ours is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DatabaseURL, cfg.Pool)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connection established", "dialect", db.Dialect)

	// --- Migrations -------------------------------------------------------
	// A failed migration is fatal: the server must not start against a
	// partially migrated schema.
	if cfg.RunMigrations {
		m, err := migrate.New(db.DB.DB, db.Dialect, logger)
		if err != nil {
			slog.Error("failed to prepare migrations", "error", err)
			os.Exit(1)
		}
		applied, err := m.Up(ctx)
		if err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations complete", "applied", applied)
	}

	// --- HTTP Server ------------------------------------------------------
	regions := service.NewRegionService(repo.NewRegionRepo(db, db.Dialect))
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      newRouter(cfg, logger, regions, middleware.NewMetrics("sushi")),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newRouter builds the full HTTP surface.
//
// Middleware is applied in order: RequestID → RealIP → Logger → Metrics →
// Recoverer → CORS → MaxBodySize.
// RequestID generates a unique trace ID per request.
// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
// Recoverer catches panics and returns HTTP 500 instead of crashing.
func newRouter(cfg config.Config, logger *slog.Logger, regions handler.RegionServicer, metrics *middleware.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(metrics.Middleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", metrics.Handler())
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// /health and /api/regions come from openapi.yaml via the generated
	// chi wrapper and are registered directly on r.
	handler.NewServer(regions, logger).Routes(r)
	r.Handle("/api/static/*", http.StripPrefix("/api/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	return r
}
