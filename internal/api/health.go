// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

// Package api contains the health check handlers for liveness and readiness probes.
package api

import (
	"log/slog"
	"net/http"

	"github.com/mumudesign/studio-api/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func() error

	// CheckSessions pings the Redis client backing admin sessions.
	CheckSessions func() error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

type dependencyCheck struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// readiness handles GET /ready (Readiness probe).
//
// Each configured dependency is probed; a single failure degrades the whole
// response to 503 so orchestrators hold traffic.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	probes := []struct {
		name  string
		check func() error
	}{
		{"postgres", handler.dependencies.CheckDatabase},
		{"redis", handler.dependencies.CheckSessions},
	}

	results := make([]dependencyCheck, 0, len(probes))
	isSystemReady := true

	for _, probe := range probes {
		if probe.check == nil {
			continue
		}
		result := dependencyCheck{Name: probe.name, IsOK: true}
		if err := probe.check(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed",
				slog.String("dependency", probe.name),
				slog.Any("error", err))
		}
		results = append(results, result)
	}

	responseStatus, statusCode := "ready", http.StatusOK
	if !isSystemReady {
		responseStatus, statusCode = "degraded", http.StatusServiceUnavailable
	}

	respond.JSON(writer, statusCode, map[string]any{
		"status": responseStatus,
		"checks": results,
	})
}
