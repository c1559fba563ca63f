// Copyright (c) 2026 Brewcode. All rights reserved.

// Package auth implements the login flows for the community: a local
// email/password pair plus OAuth identity providers, all funneling into
// the same account resolution step and the same token issuance.
//
// # Architecture
//
// The service orchestrates the person repository, the account resolver,
// and the volatile session/state stores through interfaces. It knows
// nothing about HTTP or Redis.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brewcode/community/internal/people"
	"github.com/brewcode/community/internal/platform/apperr"
	"github.com/brewcode/community/internal/platform/constants"
	"github.com/brewcode/community/internal/platform/sec"
	"github.com/brewcode/community/internal/platform/validate"
	"github.com/brewcode/community/pkg/uuidv7"
)

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string bound to a person.
	GenerateAccessToken(personID, urlSlug string, active bool, timeToLive time.Duration) (string, error)
}

// AccountResolver maps an external identity payload to a Person.
type AccountResolver interface {
	Resolve(ctx context.Context, provider people.Provider, identity people.ExternalIdentity) (*people.Person, error)
}

// Service implements authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, session
// issuance, or the OAuth flow must be reviewed by the security team.
type Service struct {
	persons   people.Repository
	resolver  AccountResolver
	sessions  SessionRepository
	states    StateRepository
	tokens    TokenProvider
	providers map[people.Provider]IdentityProvider
	logger    *slog.Logger
}

// NewService constructs a new [Service] with its dependencies. Every
// registered identity provider becomes a login option.
func NewService(
	persons people.Repository,
	resolver AccountResolver,
	sessions SessionRepository,
	states StateRepository,
	tokens TokenProvider,
	logger *slog.Logger,
	identityProviders ...IdentityProvider,
) *Service {
	providers := make(map[people.Provider]IdentityProvider, len(identityProviders))
	for _, provider := range identityProviders {
		providers[provider.Name()] = provider
	}

	return &Service{
		persons:   persons,
		resolver:  resolver,
		sessions:  sessions,
		states:    states,
		tokens:    tokens,
		providers: providers,
		logger:    logger,
	}
}

// Session represents a successfully established login session.
type Session struct {
	AccessToken           string         `json:"access_token"`
	RefreshToken          string         `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time      `json:"refresh_token_expires_at"`
	Person                *people.Person `json:"person"`
}

// RegisterInput holds the data required for a local account signup.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a local password-backed account and logs it in.
//
// # Business Rules
//   - Emails must not already belong to a profile.
//   - New accounts start inactive, like every other creation path.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	// ── 1. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.Required(people.FieldName, input.Name)
	validator.Required(people.FieldEmail, input.Email)
	if input.Email != "" {
		validator.Email(people.FieldEmail, input.Email)
	}
	validator.MinLen("password", input.Password, 8)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// ── 2. Uniqueness Check ───────────────────────────────────────────────

	// Return a client-safe Conflict error when the email is taken.
	_, err := service.persons.FindByAny(ctx, people.AlternateIdentity{Email: input.Email})
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("auth_register_lookup_failed: %w", err)
	}

	// ── 3. Security ───────────────────────────────────────────────────────

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_register_hash_failed: %w", err)
	}

	// ── 4. Entity Construction & Persistence ──────────────────────────────

	person := &people.Person{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		IsActive:     false, // Rule: new accounts start inactive
	}

	if err := service.persons.Save(ctx, person); err != nil {
		return nil, fmt.Errorf("auth_register_failed: %w", err)
	}

	service.logger.Info("account_registered", slog.String("url_slug", person.URLSlug))

	return service.issueSession(ctx, person)
}

// Login validates local credentials and issues tokens.
func (service *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	person, err := service.persons.FindByAny(ctx, people.AlternateIdentity{Email: email})

	// An unknown email gets the same generic message as a wrong password to
	// prevent account enumeration. Storage failures are not a 401 and
	// propagate as-is.
	if apperr.IsNotFound(err) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}
	if err != nil {
		return nil, fmt.Errorf("auth_login_lookup_failed: %w", err)
	}

	if !sec.CheckPasswordHash(password, person.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	service.logger.Info("login_succeeded", slog.String("url_slug", person.URLSlug))

	return service.issueSession(ctx, person)
}

// BeginLogin starts the OAuth flow for the named provider and returns the
// authorization URL to redirect the client to.
func (service *Service) BeginLogin(ctx context.Context, providerName string) (string, error) {
	provider, ok := service.providers[people.Provider(providerName)]
	if !ok {
		return "", apperr.NotFound("Identity provider")
	}

	state, err := sec.GenerateSecureToken(16)
	if err != nil {
		return "", fmt.Errorf("auth_state_generation_failed: %w", err)
	}

	if err := service.states.Set(ctx, state, providerName, constants.OAuthStateTTL); err != nil {
		return "", fmt.Errorf("auth_state_store_failed: %w", err)
	}

	return provider.AuthCodeURL(state), nil
}

// CompleteLogin finishes the OAuth flow: the state is consumed, the code
// exchanged, and the external identity resolved to a Person.
func (service *Service) CompleteLogin(ctx context.Context, providerName, state, code string) (*Session, error) {
	// ── 1. CSRF State Check ───────────────────────────────────────────────

	pendingProvider, err := service.states.Take(ctx, state)
	if err != nil || pendingProvider != providerName {
		return nil, apperr.Unauthorized("Login state is invalid or expired")
	}

	provider, ok := service.providers[people.Provider(providerName)]
	if !ok {
		return nil, apperr.NotFound("Identity provider")
	}

	// ── 2. Code Exchange & Profile Fetch ──────────────────────────────────

	identity, err := provider.Identity(ctx, code)
	if err != nil {
		return nil, apperr.Unauthorized("Identity provider rejected the login")
	}

	// ── 3. Account Resolution ─────────────────────────────────────────────

	person, err := service.resolver.Resolve(ctx, provider.Name(), identity)
	if err != nil {
		return nil, err
	}

	return service.issueSession(ctx, person)
}

// RefreshSession implements refresh token rotation: the presented token is
// revoked and a fresh pair is issued, so a replayed token dies on arrival.
func (service *Service) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	tokenHash := sec.HashToken(refreshToken)

	personID, err := service.sessions.Get(ctx, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	if err := service.sessions.Delete(ctx, tokenHash); err != nil {
		return nil, fmt.Errorf("auth_refresh_revoke_failed: %w", err)
	}

	// Re-read the person so a fresh access token carries the current
	// active flag and slug.
	person, err := service.persons.FindByID(ctx, personID)
	if err != nil {
		return nil, apperr.Unauthorized("Account no longer exists")
	}

	return service.issueSession(ctx, person)
}

// Logout revokes the session bound to the refresh token. Logging out an
// already-dead session succeeds (idempotent operation).
func (service *Service) Logout(ctx context.Context, refreshToken string) error {
	if err := service.sessions.Delete(ctx, sec.HashToken(refreshToken)); err != nil {
		return fmt.Errorf("auth_logout_failed: %w", err)
	}
	return nil
}

// issueSession mints the access/refresh token pair for a resolved person.
func (service *Service) issueSession(ctx context.Context, person *people.Person) (*Session, error) {
	accessToken, err := service.tokens.GenerateAccessToken(person.ID, person.URLSlug, person.IsActive, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_access_token_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("auth_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(constants.RefreshTokenTTL)
	if err := service.sessions.Set(ctx, sec.HashToken(refreshToken), person.ID, constants.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("auth_session_store_failed: %w", err)
	}

	return &Session{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Person:                person,
	}, nil
}
