// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

// Command api is the entry point for the Mumu Design studio API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (.env in development).
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/joho/godotenv"

	adminauth "github.com/mumudesign/studio-api/internal/admin/auth"
	"github.com/mumudesign/studio-api/internal/api"
	"github.com/mumudesign/studio-api/internal/core/board"
	"github.com/mumudesign/studio-api/internal/core/faq"
	"github.com/mumudesign/studio-api/internal/core/gallery"
	"github.com/mumudesign/studio-api/internal/core/inquiry"
	"github.com/mumudesign/studio-api/internal/core/studio"
	"github.com/mumudesign/studio-api/internal/platform/config"
	"github.com/mumudesign/studio-api/internal/platform/constants"
	"github.com/mumudesign/studio-api/internal/platform/migration"
	pgstore "github.com/mumudesign/studio-api/internal/platform/postgres"
	redisstore "github.com/mumudesign/studio-api/internal/platform/redis"
	"github.com/mumudesign/studio-api/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "studio-api"))
	slog.SetDefault(log)

	log.Info("[MumuDesign] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// .env is a development convenience; in production the environment is
	// populated by the deployment platform and the file is absent.
	if err := godotenv.Load(); err == nil {
		log.Info("dotenv_loaded")
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "studio-api"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Session Tokens ─────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckSessions: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	sessionRepository := adminauth.NewRedisSessionRepository(rdb)
	authService := adminauth.NewService(cfg.AdminPasswordHash, tokenService, sessionRepository)
	authHandler := adminauth.NewHandler(authService)

	galleryRepository := gallery.NewPostgresRepository(pool, log)
	galleryService := gallery.NewService(galleryRepository, galleryRepository, log)
	galleryHandler := gallery.NewHandler(galleryService)

	boardRepository := board.NewPostgresRepository(pool, log)
	boardService := board.NewService(boardRepository, log)
	boardHandler := board.NewHandler(boardService)

	inquiryService := inquiry.NewService(inquiry.NewRelay(cfg.InquiryRelayURL), log)
	inquiryHandler := inquiry.NewHandler(inquiryService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		AdminAuth: authHandler,
		Gallery:   galleryHandler,
		Board:     boardHandler,
		FAQ:       faq.NewHandler(),
		Studio:    studio.NewHandler(),
		Inquiry:   inquiryHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, authService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
