// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

// Package auth implements the admin session gate for the studio editor.
//
// # Architecture
//
// There are no user accounts. The studio shares a single credential whose
// bcrypt hash lives in the environment; a successful login yields a signed
// session token paired with a revocable Redis record. Everything behind the
// editor surface checks that pair.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/mumudesign/studio-api/internal/platform/apperr"
	"github.com/mumudesign/studio-api/internal/platform/constants"
	"github.com/mumudesign/studio-api/internal/platform/sec"
	"github.com/mumudesign/studio-api/pkg/uuid"
)

// TokenProvider defines the contract for minting and checking session tokens.
type TokenProvider interface {
	// GenerateSessionToken creates a signed JWT carrying the session id.
	GenerateSessionToken(sessionID string, timeToLive time.Duration) (string, error)

	// VerifyToken checks signature and expiry, returning the claims.
	VerifyToken(tokenString string) (*sec.AdminClaims, error)
}

// Service implements the admin login, logout and session verification use
// cases.
//
// # Review Process
//
// This service gates every mutation on the site. Changes to credential
// verification or session handling need a second pair of eyes.
type Service struct {
	passwordHash string
	tokens       TokenProvider
	sessions     SessionRepository
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(passwordHash string, tokens TokenProvider, sessions SessionRepository) *Service {
	return &Service{
		passwordHash: passwordHash,
		tokens:       tokens,
		sessions:     sessions,
	}
}

// Session represents a successfully established admin session.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login verifies the shared credential and establishes a session.
//
// # Parameters
//   - context: Context for the session store operation.
//   - password: The plain-text credential from the login form.
//
// # Returns
//   - A pointer to [Session] containing the bearer token.
//   - Returns [apperr.Unauthorized] if the credential does not match.
//
// # Flow
//  1. Compare the credential against the environment bcrypt hash.
//  2. Mint a signed token carrying a fresh session id.
//  3. Record the session in Redis under the token hash, with TTL.
func (service *Service) Login(context context.Context, password string) (*Session, error) {
	// ── 1. Credential Verification ────────────────────────────────────────

	if !sec.CheckPasswordHash(password, service.passwordHash) {
		return nil, apperr.Unauthorized("Invalid password")
	}

	// ── 2. Token Issuance ─────────────────────────────────────────────────

	sessionID := uuid.New()
	token, err := service.tokens.GenerateSessionToken(sessionID, constants.AdminSessionTTL)
	if err != nil {
		return nil, fmt.Errorf("admin_auth_token_generation_failed: %w", err)
	}

	// ── 3. Session Record ─────────────────────────────────────────────────

	expiresAt := time.Now().Add(constants.AdminSessionTTL)
	if err := service.sessions.Save(context, sec.HashToken(token), sessionID, constants.AdminSessionTTL); err != nil {
		return nil, fmt.Errorf("admin_auth_session_save_failed: %w", err)
	}

	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the session behind the given token.
// Revoking an unknown, expired or already revoked token still reports
// success; logout is idempotent.
func (service *Service) Logout(context context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := service.sessions.Revoke(context, sec.HashToken(token)); err != nil {
		return fmt.Errorf("admin_auth_logout_failed: %w", err)
	}

	return nil
}

// VerifySession checks a bearer token end to end: signature and expiry
// first, then liveness of the Redis record, so a logged-out token fails even
// before its expiry.
//
// Implements [middleware.SessionVerifier].
func (service *Service) VerifySession(context context.Context, tokenString string) (*sec.AdminClaims, error) {
	claims, err := service.tokens.VerifyToken(tokenString)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	sessionID, err := service.sessions.Find(context, sec.HashToken(tokenString))
	if err != nil {
		return nil, apperr.Unauthorized("Session has been revoked")
	}

	// The record must belong to the token that claims it.
	if sessionID != claims.SessionID {
		return nil, apperr.Unauthorized("Session mismatch")
	}

	return claims, nil
}
