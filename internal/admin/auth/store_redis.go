// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/mumudesign/studio-api/internal/platform/apperr"
	"github.com/mumudesign/studio-api/internal/platform/constants"
)

// RedisSessionRepository implements [SessionRepository] using Redis. The TTL
// on each key is the session expiry; no sweeper is needed.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new Redis-backed SessionRepository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Save persists a session record under the token hash.

Parameters:
  - context: context.Context
  - tokenHash: string (SHA-256 of the issued token)
  - sessionID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Save(context context.Context, tokenHash, sessionID string, ttl time.Duration) error {
	key := sessionKey(tokenHash)

	if err := repository.client.Set(context, key, sessionID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_admin_session_save_failed: %w", err)
	}

	return nil
}

/*
Find returns the session id stored under the token hash.

Description: Returns apperr.NotFound if the session is absent or expired.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - string: Session id
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionRepository) Find(context context.Context, tokenHash string) (string, error) {
	key := sessionKey(tokenHash)

	sessionID, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Session is invalid or expired")
		}
		return "", fmt.Errorf("redis_admin_session_find_failed: %w", err)
	}

	return sessionID, nil
}

/*
Revoke removes the session record.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionRepository) Revoke(context context.Context, tokenHash string) error {
	key := sessionKey(tokenHash)

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_admin_session_revoke_failed: %w", err)
	}

	return nil
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixAdminSession + tokenHash
}
