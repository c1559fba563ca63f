// Copyright (c) 2026 Brewcode. All rights reserved.

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// # Safety
//
// It stores and retrieves per-request values (person identity, request ID,
// logger). Using a private, unexported key type prevents collisions with
// third-party packages that also use context storage.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyPerson is the context key for the authenticated identity ([*sec.AuthClaims]).
	KeyPerson key = "person"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
