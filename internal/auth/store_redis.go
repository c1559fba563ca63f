// Copyright (c) 2026 Brewcode. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brewcode/community/internal/platform/apperr"
)

// RedisSessionRepository implements [SessionRepository] using Redis.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(tokenHash string) string {
	return fmt.Sprintf("auth:session:%s", tokenHash)
}

// Set stores the session with its TTL.
func (repository *RedisSessionRepository) Set(ctx context.Context, tokenHash, personID string, ttl time.Duration) error {
	if err := repository.client.Set(ctx, sessionKey(tokenHash), personID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

// Get retrieves the person ID for a hashed refresh token.
func (repository *RedisSessionRepository) Get(ctx context.Context, tokenHash string) (string, error) {
	personID, err := repository.client.Get(ctx, sessionKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Session")
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}
	return personID, nil
}

// Delete revokes the session.
func (repository *RedisSessionRepository) Delete(ctx context.Context, tokenHash string) error {
	if err := repository.client.Del(ctx, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}

// # OAuth State Repository

// RedisStateRepository implements [StateRepository] using Redis.
type RedisStateRepository struct {
	client *redis.Client
}

// NewStateRepository creates a new Redis-backed StateRepository.
func NewStateRepository(client *redis.Client) *RedisStateRepository {
	return &RedisStateRepository{client: client}
}

func stateKey(state string) string {
	return fmt.Sprintf("auth:state:%s", state)
}

// Set stores a pending login state with its TTL.
func (repository *RedisStateRepository) Set(ctx context.Context, state, provider string, ttl time.Duration) error {
	if err := repository.client.Set(ctx, stateKey(state), provider, ttl).Err(); err != nil {
		return fmt.Errorf("redis_state_set_failed: %w", err)
	}
	return nil
}

// Take atomically reads and deletes the state, so a captured callback URL
// cannot be replayed.
func (repository *RedisStateRepository) Take(ctx context.Context, state string) (string, error) {
	provider, err := repository.client.GetDel(ctx, stateKey(state)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Login state")
		}
		return "", fmt.Errorf("redis_state_take_failed: %w", err)
	}
	return provider, nil
}
