// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminauth "github.com/mumudesign/studio-api/internal/admin/auth"
	"github.com/mumudesign/studio-api/internal/platform/apperr"
	"github.com/mumudesign/studio-api/internal/platform/constants"
	"github.com/mumudesign/studio-api/internal/platform/sec"
)

func newTestService(t *testing.T) (*adminauth.Service, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	tokens, err := sec.NewTokenService("test-session-secret", constants.AuthIssuer)
	require.NoError(t, err)

	hash, err := sec.HashPassword("studio-password")
	require.NoError(t, err)

	sessions := adminauth.NewRedisSessionRepository(client)
	return adminauth.NewService(hash, tokens, sessions), server
}

/*
TestLogin_EstablishesVerifiableSession verifies the full round trip: login,
then verify the issued token against both signature and session record.
*/
func TestLogin_EstablishesVerifiableSession(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	session, err := service.Login(ctx, "studio-password")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.False(t, session.ExpiresAt.IsZero())

	claims, err := service.VerifySession(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.NotEmpty(t, claims.SessionID)
}

/*
TestLogin_RejectsWrongPassword verifies credential mismatches, including
near-misses, fail with Unauthorized.
*/
func TestLogin_RejectsWrongPassword(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	for _, wrong := range []string{"Studio-password", "studio-password ", ""} {
		_, err := service.Login(ctx, wrong)
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	}
}

/*
TestLogout_RevokesSession verifies a logged-out token stops verifying even
though its signature and expiry are still valid, and that logout stays
idempotent.
*/
func TestLogout_RevokesSession(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	session, err := service.Login(ctx, "studio-password")
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, session.Token))

	_, err = service.VerifySession(ctx, session.Token)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// Second logout and empty-token logout both succeed quietly.
	assert.NoError(t, service.Logout(ctx, session.Token))
	assert.NoError(t, service.Logout(ctx, ""))
}

/*
TestVerifySession_RejectsTamperedToken verifies that a modified token fails
signature verification before the store is even consulted.
*/
func TestVerifySession_RejectsTamperedToken(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	session, err := service.Login(ctx, "studio-password")
	require.NoError(t, err)

	tampered := session.Token + "x"
	_, err = service.VerifySession(ctx, tampered)
	assert.Error(t, err)
}

/*
TestVerifySession_ExpiredRecord verifies that once the Redis record's TTL
elapses the session no longer verifies.
*/
func TestVerifySession_ExpiredRecord(t *testing.T) {
	service, server := newTestService(t)
	ctx := context.Background()

	session, err := service.Login(ctx, "studio-password")
	require.NoError(t, err)

	server.FastForward(constants.AdminSessionTTL + time.Second)

	_, err = service.VerifySession(ctx, session.Token)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}
