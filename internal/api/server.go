// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	adminauth "github.com/mumudesign/studio-api/internal/admin/auth"
	"github.com/mumudesign/studio-api/internal/core/board"
	"github.com/mumudesign/studio-api/internal/core/faq"
	"github.com/mumudesign/studio-api/internal/core/gallery"
	"github.com/mumudesign/studio-api/internal/core/inquiry"
	"github.com/mumudesign/studio-api/internal/core/studio"
	"github.com/mumudesign/studio-api/internal/platform/config"
	"github.com/mumudesign/studio-api/internal/platform/constants"
	"github.com/mumudesign/studio-api/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// AdminAuth handles the admin session endpoints (login, logout).
	AdminAuth *adminauth.Handler

	// Gallery handles the portfolio catalogue and its editor.
	Gallery *gallery.Handler

	// Board handles the 1:1 inquiry board and its moderation.
	Board *board.Handler

	// FAQ serves the curated question list.
	FAQ *faq.Handler

	// Studio serves static studio information (process page).
	Studio *studio.Handler

	// Inquiry forwards consultation requests to the form relay.
	Inquiry *inquiry.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.SessionVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution. Authenticate runs
	// before StructuredLogger so the access log can flag admin requests.
	r.Use(middleware.RequestID())
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		// Public site surface.
		api.Mount("/gallery", h.Gallery.Routes())
		api.Mount("/board", h.Board.Routes())
		api.Mount("/faqs", h.FAQ.Routes())
		api.Mount("/process", h.Studio.Routes())
		api.Mount("/inquiries", h.Inquiry.Routes())

		// Editor surface. Login/logout stay outside the gate; everything
		// else requires a live admin session.
		api.Route("/admin", func(admin chi.Router) {
			admin.Mount("/", h.AdminAuth.Routes())

			admin.Group(func(gated chi.Router) {
				gated.Use(middleware.RequireAdmin)

				gated.Mount("/gallery", h.Gallery.AdminRoutes())
				gated.Mount("/board", h.Board.AdminRoutes())
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
