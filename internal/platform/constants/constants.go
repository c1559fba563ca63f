// Copyright (c) 2026 Brewcode. All rights reserved.

// Package constants centralizes cross-cutting literals shared by the
// middleware chain, the auth flow, and the job board.
package constants

import "time"

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # Server Timeouts

const (
	// GlobalRequestTimeout bounds every request, including storage I/O.
	GlobalRequestTimeout = 30 * time.Second

	DefaultReadTimeout       = 10 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second

	// ShutdownTimeout is how long in-flight requests get to finish.
	ShutdownTimeout = 15 * time.Second
)

// # Rate Limiting

const (
	DefaultRateLimitRPS      = 20
	DefaultRateLimitBurst    = 40
	RateLimitCleanupInterval = 5 * time.Minute
	RateLimitClientTTL       = 10 * time.Minute
)

// # Auth & Sessions

const (
	// AuthIssuer identifies this service in signed access tokens.
	AuthIssuer = "brewcode-community"

	// AccessTokenTTL keeps the leak window small; clients refresh silently.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL bounds a login session before re-authentication.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// OAuthStateTTL bounds how long a login redirect may stay pending.
	OAuthStateTTL = 10 * time.Minute
)

// # Job Board

// JobBoardWindow is how far back the board lists posts and requests.
const JobBoardWindow = 30 * 24 * time.Hour

// # Response Fields

const (
	FieldCode  = "code"
	FieldError = "error"
)
