// Copyright (c) 2026 Brewcode. All rights reserved.

package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/brewcode/community/internal/people"
)

// IdentityProvider is an OAuth identity source the login flow can use.
//
// Each provider owns its authorization endpoint and knows how to turn an
// authorization code into the identity payload the account resolver
// consumes. The resolver neither knows nor cares which plugin produced
// the payload.
type IdentityProvider interface {
	// Name returns the provider tag used in routes and resolution rules.
	Name() people.Provider

	// AuthCodeURL builds the provider's authorization URL carrying the
	// CSRF state.
	AuthCodeURL(state string) string

	// Identity exchanges the authorization code and fetches the
	// logged-in user's identity payload.
	Identity(ctx context.Context, code string) (people.ExternalIdentity, error)
}

// twitterEndpoint is Twitter's OAuth2 endpoint pair.
var twitterEndpoint = oauth2.Endpoint{
	AuthURL:  "https://twitter.com/i/oauth2/authorize",
	TokenURL: "https://api.twitter.com/2/oauth2/token",
}

// # GitHub

// GitHubProvider implements [IdentityProvider] against the GitHub API.
type GitHubProvider struct {
	config  *oauth2.Config
	baseURL string
}

// NewGitHubProvider wires a GitHub OAuth app. redirectURL is this
// service's callback for the provider.
func NewGitHubProvider(clientID, clientSecret, redirectURL string) *GitHubProvider {
	return &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		baseURL: "https://api.github.com",
	}
}

func (provider *GitHubProvider) Name() people.Provider {
	return people.ProviderGitHub
}

func (provider *GitHubProvider) AuthCodeURL(state string) string {
	return provider.config.AuthCodeURL(state)
}

// githubUser is the portion of the GitHub user payload we consume.
type githubUser struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

func (provider *GitHubProvider) Identity(ctx context.Context, code string) (people.ExternalIdentity, error) {
	token, err := provider.config.Exchange(ctx, code)
	if err != nil {
		return people.ExternalIdentity{}, fmt.Errorf("github_oauth_exchange_failed: %w", err)
	}

	var user githubUser
	if err := fetchJSON(ctx, provider.config.Client(ctx, token), provider.baseURL+"/user", &user); err != nil {
		return people.ExternalIdentity{}, fmt.Errorf("github_oauth_profile_failed: %w", err)
	}

	// Accounts without a display name fall back to the login handle so the
	// resolved person still gets a usable name and slug.
	name := user.Name
	if name == "" {
		name = user.Login
	}

	return people.ExternalIdentity{
		Name:   name,
		Handle: user.Login,
		Email:  user.Email,
		Bio:    user.Bio,
	}, nil
}

// # Twitter

// TwitterProvider implements [IdentityProvider] against the Twitter v2 API.
type TwitterProvider struct {
	config  *oauth2.Config
	baseURL string
}

// NewTwitterProvider wires a Twitter OAuth app. redirectURL is this
// service's callback for the provider.
func NewTwitterProvider(clientID, clientSecret, redirectURL string) *TwitterProvider {
	return &TwitterProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"users.read", "tweet.read"},
			Endpoint:     twitterEndpoint,
		},
		baseURL: "https://api.twitter.com",
	}
}

func (provider *TwitterProvider) Name() people.Provider {
	return people.ProviderTwitter
}

func (provider *TwitterProvider) AuthCodeURL(state string) string {
	return provider.config.AuthCodeURL(state)
}

// twitterUser is the portion of the Twitter v2 user payload we consume.
type twitterUser struct {
	Data struct {
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"data"`
}

func (provider *TwitterProvider) Identity(ctx context.Context, code string) (people.ExternalIdentity, error) {
	token, err := provider.config.Exchange(ctx, code)
	if err != nil {
		return people.ExternalIdentity{}, fmt.Errorf("twitter_oauth_exchange_failed: %w", err)
	}

	var user twitterUser
	if err := fetchJSON(ctx, provider.config.Client(ctx, token), provider.baseURL+"/2/users/me", &user); err != nil {
		return people.ExternalIdentity{}, fmt.Errorf("twitter_oauth_profile_failed: %w", err)
	}

	name := user.Data.Name
	if name == "" {
		name = user.Data.Username
	}

	return people.ExternalIdentity{
		Name:   name,
		Handle: user.Data.Username,
	}, nil
}

// fetchJSON performs an authenticated GET and decodes the JSON body.
func fetchJSON(ctx context.Context, client *http.Client, endpoint string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", response.StatusCode)
	}

	return json.NewDecoder(response.Body).Decode(target)
}
