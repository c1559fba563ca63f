// Copyright (c) 2026 Brewcode. All rights reserved.

package auth

import (
	"context"
	"time"
)

// SessionRepository defines the contract for storing refresh-token sessions.
//
// # Storage Model
//
// Sessions are volatile: one Redis value per refresh token, keyed by the
// token's hash, holding the person ID. Expiry is enforced by the store's
// TTL, so no cleanup worker is needed.
type SessionRepository interface {
	// Set stores a session for the hashed refresh token.
	Set(ctx context.Context, tokenHash, personID string, ttl time.Duration) error

	// Get returns the person ID bound to the hashed refresh token.
	//
	// Returns [apperr.NotFound] if the session is absent or expired.
	Get(ctx context.Context, tokenHash string) (string, error)

	// Delete revokes the session. Deleting an absent session is not an
	// error.
	Delete(ctx context.Context, tokenHash string) error
}

// StateRepository defines the contract for pending OAuth login states.
//
// The state value is the CSRF token carried through the provider redirect;
// it maps back to the provider the login started with.
type StateRepository interface {
	// Set stores a pending login state for the named provider.
	Set(ctx context.Context, state, provider string, ttl time.Duration) error

	// Take returns the provider for a state and consumes it. A state can
	// be taken exactly once.
	//
	// Returns [apperr.NotFound] for unknown, expired, or replayed states.
	Take(ctx context.Context, state string) (string, error)
}
