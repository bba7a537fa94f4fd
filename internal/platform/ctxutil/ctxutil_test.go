// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mumudesign/studio-api/internal/platform/ctxutil"
	"github.com/mumudesign/studio-api/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Admin verifies that AdminClaims can be stored in context.
*/
func TestContext_Admin(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AdminClaims{SessionID: "session-123"}

	// 1. Anonymous by default
	assert.Nil(t, ctxutil.GetAdmin(ctx))
	assert.False(t, ctxutil.IsAdmin(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithAdmin(ctx, claims)
	retrieved := ctxutil.GetAdmin(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "session-123", retrieved.SessionID)
	assert.True(t, ctxutil.IsAdmin(ctx))
}
