// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package auth

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/mumudesign/studio-api/internal/platform/request"
	"github.com/mumudesign/studio-api/internal/platform/respond"
	"github.com/mumudesign/studio-api/internal/platform/validate"
)

// Handler implements the admin session HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with the session endpoints.
//
// # Endpoints
//   - POST /login  : Verifies the shared credential and returns a bearer token.
//   - POST /logout : Revokes the presented session. Always succeeds.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	return router
}

// loginRequest represents the JSON payload of a login attempt.
type loginRequest struct {
	Password string `json:"password"`
}

// login handles POST /api/v1/admin/login requests.
//
// # Returns
//   - Writes HTTP 200 OK with the session token and expiry.
//   - Writes HTTP 401 Unauthorized if the credential does not match.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("password", "is required"))
		return
	}

	// ── 3. Session Establishment ──────────────────────────────────────────

	session, err := handler.authService.Login(request.Context(), input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// logout handles POST /api/v1/admin/logout requests.
//
// The token to revoke is taken from the Authorization header. A missing or
// unknown token still yields 204; logout never fails from the caller's view.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	token := bearerToken(request)

	if err := handler.authService.Logout(request.Context(), token); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// bearerToken extracts the raw token from 'Authorization: Bearer <token>'.
func bearerToken(request *http.Request) string {
	header := request.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
