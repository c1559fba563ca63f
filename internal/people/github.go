// Copyright (c) 2026 Brewcode. All rights reserved.

package people

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/brewcode/community/pkg/slice"
)

// ProjectSource lists a person's public projects from an external code
// host. Defined as an interface so handlers can be tested without network
// access.
type ProjectSource interface {
	PublicProjects(ctx context.Context, handle string) ([]Project, error)
}

// githubRepo is the portion of the GitHub repository listing we care
// about. GitHub returns a much larger object; only these fields are
// unmarshalled.
type githubRepo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
}

// GitHubProjectSource fetches public repositories from the GitHub REST API.
type GitHubProjectSource struct {
	client  *http.Client
	baseURL string
}

// NewGitHubProjectSource creates a source against the public GitHub API.
func NewGitHubProjectSource() *GitHubProjectSource {
	return &GitHubProjectSource{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.github.com",
	}
}

// NewGitHubProjectSourceWithBase creates a source against a custom API
// origin. Used by tests and GitHub Enterprise deployments.
func NewGitHubProjectSourceWithBase(client *http.Client, baseURL string) *GitHubProjectSource {
	return &GitHubProjectSource{client: client, baseURL: baseURL}
}

// PublicProjects lists the user's public repositories mapped to the
// embedded project shape.
func (source *GitHubProjectSource) PublicProjects(ctx context.Context, handle string) ([]Project, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos", source.baseURL, url.PathEscape(handle))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("github: building request: %w", err)
	}
	request.Header.Set("Accept", "application/vnd.github+json")

	response, err := source.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("github: calling repository API: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github: repository API returned status %d", response.StatusCode)
	}

	var repos []githubRepo
	if err := json.NewDecoder(response.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("github: decoding repository response: %w", err)
	}

	return slice.Map(repos, func(repo githubRepo) Project {
		return Project{
			Name:        repo.Name,
			URL:         repo.HTMLURL,
			Description: repo.Description,
		}
	}), nil
}
