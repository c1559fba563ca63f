// Copyright (c) 2026 Brewcode. All rights reserved.

package people

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brewcode/community/internal/platform/apperr"
	"github.com/brewcode/community/pkg/uuidv7"
)

// Provider tags the external identity source an account was resolved from.
//
// Resolution rules are keyed by this tag, not by the plugin that produced
// the payload: adding a provider means adding a case here, nothing else.
type Provider string

const (
	// ProviderTwitter matches by display name or twitter handle.
	ProviderTwitter Provider = "twitter"

	// ProviderGitHub matches by display name, github login, or email.
	ProviderGitHub Provider = "github"
)

// ExternalIdentity is the only shape the resolver accepts: whatever the
// identity-provider adapter learned about the logged-in user.
type ExternalIdentity struct {
	Name   string
	Handle string
	Email  string
	Bio    string
}

// Resolver maps an external identity payload to an existing or newly
// created Person.
//
// # Guarantees
//
//   - Idempotent: the same payload presented twice resolves to the same
//     Person; no duplicate is created as long as the matching field used at
//     creation remains unchanged.
//   - No overwrite: an existing match is returned untouched — external
//     payloads never clobber locally edited profiles.
//   - Atomic: any repository failure surfaces as a resolution failure and
//     no partially-created Person is left behind (creation is one Save).
type Resolver struct {
	repo   Repository
	logger *slog.Logger
}

// NewResolver constructs a Resolver over the given person repository.
func NewResolver(repo Repository, logger *slog.Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		logger: logger,
	}
}

// Resolve finds or creates the Person behind an external identity payload.
//
// # Flow
//  1. Build the provider-specific OR-match criteria.
//  2. Look up an existing candidate; return it unmodified when found.
//  3. Otherwise create a new inactive Person carrying the provider fields
//     and persist it (the save derives slug and contact hash).
func (resolver *Resolver) Resolve(ctx context.Context, provider Provider, identity ExternalIdentity) (*Person, error) {
	criteria, err := matchCriteria(provider, identity)
	if err != nil {
		return nil, err
	}

	// ── 1. Existing Match ─────────────────────────────────────────────────

	candidate, err := resolver.repo.FindByAny(ctx, criteria)
	if err == nil {
		resolver.logger.Info("account_resolved",
			slog.String("provider", string(provider)),
			slog.String("url_slug", candidate.URLSlug),
		)
		return candidate, nil
	}

	if !apperr.IsNotFound(err) {
		// Lookup failed for real: the login attempt must fail, not fall
		// through to a create that could duplicate the account.
		return nil, fmt.Errorf("account_resolution_lookup_failed: %w", err)
	}

	// ── 2. First Login: Create ────────────────────────────────────────────

	person := &Person{
		ID:       uuidv7.New(),
		Name:     identity.Name,
		IsActive: false, // Rule: externally linked accounts start inactive
	}

	switch provider {
	case ProviderTwitter:
		person.TwitterNick = identity.Handle
	case ProviderGitHub:
		person.GitHubNick = identity.Handle
		person.Email = identity.Email
		person.Bio = identity.Bio
	}

	if err := resolver.repo.Save(ctx, person); err != nil {
		return nil, fmt.Errorf("account_resolution_create_failed: %w", err)
	}

	resolver.logger.Info("account_created",
		slog.String("provider", string(provider)),
		slog.String("url_slug", person.URLSlug),
	)

	return person, nil
}

// matchCriteria builds the per-provider OR-match over the supplied fields.
func matchCriteria(provider Provider, identity ExternalIdentity) (AlternateIdentity, error) {
	switch provider {
	case ProviderTwitter:
		return AlternateIdentity{
			Name:        identity.Name,
			TwitterNick: identity.Handle,
		}, nil
	case ProviderGitHub:
		return AlternateIdentity{
			Name:       identity.Name,
			GitHubNick: identity.Handle,
			Email:      identity.Email,
		}, nil
	}
	return AlternateIdentity{}, fmt.Errorf("account_resolution_unknown_provider: %q", provider)
}
