// Copyright (c) 2026 Brewcode. All rights reserved.

package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewcode/community/internal/auth"
	"github.com/brewcode/community/internal/people"
	"github.com/brewcode/community/internal/platform/apperr"
	"github.com/brewcode/community/internal/platform/dberr"
	"github.com/brewcode/community/internal/platform/sec"
)

// # Fakes

type fakePersonRepo struct {
	persons []*people.Person
	findErr error
}

func (repo *fakePersonRepo) FindByID(_ context.Context, id string) (*people.Person, error) {
	for _, person := range repo.persons {
		if person.ID == id {
			return person, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakePersonRepo) FindBySlug(_ context.Context, urlSlug string) (*people.Person, error) {
	for _, person := range repo.persons {
		if person.URLSlug == urlSlug {
			return person, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakePersonRepo) FindByAny(_ context.Context, criteria people.AlternateIdentity) (*people.Person, error) {
	if repo.findErr != nil {
		return nil, repo.findErr
	}
	if criteria.Empty() {
		return nil, dberr.ErrNotFound
	}
	for _, person := range repo.persons {
		nameHit := criteria.Name != "" && person.Name == criteria.Name
		twitterHit := criteria.TwitterNick != "" && person.TwitterNick == criteria.TwitterNick
		githubHit := criteria.GitHubNick != "" && person.GitHubNick == criteria.GitHubNick
		emailHit := criteria.Email != "" && person.Email == criteria.Email
		if nameHit || twitterHit || githubHit || emailHit {
			return person, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakePersonRepo) Save(_ context.Context, person *people.Person) error {
	if err := people.Normalize(person); err != nil {
		return err
	}
	for i, existing := range repo.persons {
		if existing.ID == person.ID {
			repo.persons[i] = person
			return nil
		}
	}
	repo.persons = append(repo.persons, person)
	return nil
}

func (repo *fakePersonRepo) List(_ context.Context, _, _ int) ([]*people.Person, int, error) {
	return repo.persons, len(repo.persons), nil
}

type memoryStore struct {
	values map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (store *memoryStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	store.values[key] = value
	return nil
}

func (store *memoryStore) Get(_ context.Context, key string) (string, error) {
	value, ok := store.values[key]
	if !ok {
		return "", apperr.NotFound("Session")
	}
	return value, nil
}

func (store *memoryStore) Delete(_ context.Context, key string) error {
	delete(store.values, key)
	return nil
}

func (store *memoryStore) Take(_ context.Context, key string) (string, error) {
	value, ok := store.values[key]
	if !ok {
		return "", apperr.NotFound("Login state")
	}
	delete(store.values, key)
	return value, nil
}

// fakeIdentityProvider returns a canned identity for any code.
type fakeIdentityProvider struct {
	name     people.Provider
	identity people.ExternalIdentity
	codeSeen string
}

func (provider *fakeIdentityProvider) Name() people.Provider { return provider.name }

func (provider *fakeIdentityProvider) AuthCodeURL(state string) string {
	return "https://provider.example/authorize?state=" + state
}

func (provider *fakeIdentityProvider) Identity(_ context.Context, code string) (people.ExternalIdentity, error) {
	provider.codeSeen = code
	return provider.identity, nil
}

type authFixture struct {
	repo     *fakePersonRepo
	sessions *memoryStore
	states   *memoryStore
	provider *fakeIdentityProvider
	service  *auth.Service
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := sec.NewTokenService("test-secret", "test-issuer")
	require.NoError(t, err)

	repo := &fakePersonRepo{}
	sessions := newMemoryStore()
	states := newMemoryStore()
	provider := &fakeIdentityProvider{
		name: people.ProviderGitHub,
		identity: people.ExternalIdentity{
			Name:   "Ann",
			Handle: "annx",
			Email:  "ann@example.com",
			Bio:    "Systems tinkerer",
		},
	}

	return &authFixture{
		repo:     repo,
		sessions: sessions,
		states:   states,
		provider: provider,
		service: auth.NewService(
			repo,
			people.NewResolver(repo, logger),
			sessions,
			states,
			tokens,
			logger,
			provider,
		),
	}
}

// # Local Accounts

/*
TestService_Register covers local signup: validation, uniqueness, the
inactive default, and immediate token issuance.
*/
func TestService_Register(t *testing.T) {
	t.Run("creates_inactive_account_and_logs_in", func(t *testing.T) {
		fixture := newAuthFixture(t)

		session, err := fixture.service.Register(context.Background(), auth.RegisterInput{
			Name:     "Ann",
			Email:    "ann@example.com",
			Password: "correct horse",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
		assert.False(t, session.Person.IsActive)
		assert.Equal(t, "ann", session.Person.URLSlug)
		assert.NotEqual(t, "correct horse", session.Person.PasswordHash)
		assert.Len(t, fixture.sessions.values, 1)
	})

	t.Run("rejects_duplicate_email", func(t *testing.T) {
		fixture := newAuthFixture(t)

		_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
			Name: "Ann", Email: "ann@example.com", Password: "correct horse",
		})
		require.NoError(t, err)

		_, err = fixture.service.Register(context.Background(), auth.RegisterInput{
			Name: "Other Ann", Email: "ann@example.com", Password: "different pass",
		})
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})

	t.Run("rejects_short_password", func(t *testing.T) {
		fixture := newAuthFixture(t)

		_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
			Name: "Ann", Email: "ann@example.com", Password: "short",
		})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.Empty(t, fixture.repo.persons)
	})
}

/*
TestService_Login checks credential verification and the deliberately
generic failure message.
*/
func TestService_Login(t *testing.T) {
	fixture := newAuthFixture(t)
	_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Name: "Ann", Email: "ann@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	t.Run("valid_credentials", func(t *testing.T) {
		session, err := fixture.service.Login(context.Background(), "ann@example.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, "ann", session.Person.URLSlug)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := fixture.service.Login(context.Background(), "ann@example.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("unknown_email_same_error", func(t *testing.T) {
		_, err := fixture.service.Login(context.Background(), "nobody@example.com", "whatever")
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("storage_failure_is_not_a_401", func(t *testing.T) {
		broken := newAuthFixture(t)
		broken.repo.findErr = errors.New("connection reset")

		_, err := broken.service.Login(context.Background(), "ann@example.com", "correct horse")
		require.Error(t, err)
		assert.Nil(t, apperr.As(err))
	})
}

// # OAuth Flow

/*
TestService_OAuthFlow walks the full redirect round-trip: state issuance,
callback, account resolution, and replay protection.
*/
func TestService_OAuthFlow(t *testing.T) {
	t.Run("begin_stores_state_and_builds_url", func(t *testing.T) {
		fixture := newAuthFixture(t)

		authorizationURL, err := fixture.service.BeginLogin(context.Background(), "github")
		require.NoError(t, err)

		require.Len(t, fixture.states.values, 1)
		for state := range fixture.states.values {
			assert.True(t, strings.HasSuffix(authorizationURL, "state="+state))
		}
	})

	t.Run("unknown_provider", func(t *testing.T) {
		fixture := newAuthFixture(t)

		_, err := fixture.service.BeginLogin(context.Background(), "myspace")
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("callback_resolves_account", func(t *testing.T) {
		fixture := newAuthFixture(t)

		_, err := fixture.service.BeginLogin(context.Background(), "github")
		require.NoError(t, err)

		var state string
		for s := range fixture.states.values {
			state = s
		}

		session, err := fixture.service.CompleteLogin(context.Background(), "github", state, "auth-code")
		require.NoError(t, err)

		assert.Equal(t, "auth-code", fixture.provider.codeSeen)
		assert.Equal(t, "ann", session.Person.URLSlug)
		assert.False(t, session.Person.IsActive)
		assert.Len(t, fixture.repo.persons, 1)

		// The state was consumed; replaying the callback fails.
		_, err = fixture.service.CompleteLogin(context.Background(), "github", state, "auth-code")
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("forged_state_rejected", func(t *testing.T) {
		fixture := newAuthFixture(t)

		_, err := fixture.service.CompleteLogin(context.Background(), "github", "made-up-state", "auth-code")
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})
}

// # Sessions

/*
TestService_RefreshSession verifies rotation: the old token dies, the new
pair works, and the fresh access token reflects the current active flag.
*/
func TestService_RefreshSession(t *testing.T) {
	fixture := newAuthFixture(t)
	session, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Name: "Ann", Email: "ann@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	refreshed, err := fixture.service.RefreshSession(context.Background(), session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, refreshed.RefreshToken)

	// Replaying the rotated-out token fails.
	_, err = fixture.service.RefreshSession(context.Background(), session.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestService_Logout checks revocation and idempotency.
*/
func TestService_Logout(t *testing.T) {
	fixture := newAuthFixture(t)
	session, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Name: "Ann", Email: "ann@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, fixture.service.Logout(context.Background(), session.RefreshToken))

	_, err = fixture.service.RefreshSession(context.Background(), session.RefreshToken)
	require.Error(t, err)

	// Logging out again is still fine.
	require.NoError(t, fixture.service.Logout(context.Background(), session.RefreshToken))
}
