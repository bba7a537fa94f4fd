// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mumudesign/studio-api/internal/platform/apperr"
	"github.com/mumudesign/studio-api/internal/platform/ctxutil"
	"github.com/mumudesign/studio-api/internal/platform/respond"
	"github.com/mumudesign/studio-api/internal/platform/sec"
)

// SessionVerifier defines the interface needed to verify admin sessions.
//
// # Why an interface?
//
// Defining SessionVerifier here decouples the middleware from the admin auth
// service implementation, allowing us to easily inject mocks during unit testing.
type SessionVerifier interface {
	// VerifySession checks the token signature and that the underlying
	// session record has not been revoked.
	VerifySession(ctx context.Context, tokenStr string) (*sec.AdminClaims, error)
}

// Authenticate extracts and verifies the admin session token from the
// Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous (the public site).
//  3. If present, verify signature and session liveness via [SessionVerifier].
//  4. Inject [*sec.AdminClaims] into the request context for downstream use.
func Authenticate(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := verifier.VerifySession(request.Context(), tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired session"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAdmin(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin blocks requests without a verified admin session.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It gates the whole
// editor surface (gallery mutations, board moderation).
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !ctxutil.IsAdmin(request.Context()) {
			respond.Error(writer, request, apperr.Unauthorized("Admin session required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
