// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package auth

import (
	"context"
	"time"
)

// SessionRepository defines the contract for storing revocable admin
// sessions.
//
// # Why a store at all?
//
// The JWT alone proves the token was issued by us; the session record is
// what makes logout an actual revocation rather than a client-side fiction.
// Records are keyed by token hash so a leaked store never exposes a usable
// token.
type SessionRepository interface {
	// Save persists a session record under the token hash for the given TTL.
	Save(ctx context.Context, tokenHash, sessionID string, ttl time.Duration) error

	// Find returns the session id stored under the token hash.
	//
	// Returns [apperr.NotFound] if the session is absent, expired, or revoked.
	Find(ctx context.Context, tokenHash string) (string, error)

	// Revoke removes the session record. Revoking an unknown hash is not an
	// error; logout is idempotent.
	Revoke(ctx context.Context, tokenHash string) error
}
