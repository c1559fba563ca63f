// Copyright (c) 2026 Brewcode. All rights reserved.

package people_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewcode/community/internal/people"
	"github.com/brewcode/community/internal/platform/apperr"
	"github.com/brewcode/community/pkg/pointer"
	"github.com/brewcode/community/pkg/uuidv7"
)

type fakeProjectSource struct {
	projects []people.Project
	err      error
	handle   string
}

func (source *fakeProjectSource) PublicProjects(_ context.Context, handle string) ([]people.Project, error) {
	source.handle = handle
	return source.projects, source.err
}

func newTestService(repo people.Repository, source people.ProjectSource) *people.Service {
	if source == nil {
		source = &fakeProjectSource{}
	}
	return people.NewService(repo, source, testLogger())
}

/*
TestService_Create covers the explicit submission path, including the
inactive default and field validation.
*/
func TestService_Create(t *testing.T) {
	t.Run("starts_inactive_with_derived_fields", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)

		person, err := service.Create(context.Background(), people.CreateInput{
			Name:  "Ann O'Neil",
			Email: "ann@example.com",
			IRC:   "ann_",
		})
		require.NoError(t, err)

		assert.False(t, person.IsActive)
		assert.Equal(t, "ann-oneil", person.URLSlug)
		assert.Equal(t, people.ContactHash("ann@example.com"), person.ContactHash)
		assert.Len(t, repo.persons, 1)
	})

	t.Run("rejects_missing_name", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)

		_, err := service.Create(context.Background(), people.CreateInput{Email: "ann@example.com"})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.Empty(t, repo.persons)
	})

	t.Run("rejects_malformed_email", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)

		_, err := service.Create(context.Background(), people.CreateInput{Name: "Ann", Email: "not-an-email"})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})
}

/*
TestService_UpdateProfile exercises the partial-edit semantics: supplied
fields replace, omitted fields survive, and a name change moves the slug.
*/
func TestService_UpdateProfile(t *testing.T) {
	seed := func(t *testing.T, repo *fakeRepository) *people.Person {
		t.Helper()
		person := &people.Person{
			ID:    uuidv7.New(),
			Name:  "Ann",
			Email: "ann@example.com",
			IRC:   "ann_",
			Bio:   "Original bio",
		}
		require.NoError(t, repo.Save(context.Background(), person))
		return person
	}

	t.Run("omitted_fields_survive", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)
		seed(t, repo)

		updated, err := service.UpdateProfile(context.Background(), "ann", people.UpdateInput{
			Bio: pointer.To("New bio"),
		})
		require.NoError(t, err)

		assert.Equal(t, "New bio", updated.Bio)
		assert.Equal(t, "ann_", updated.IRC)
		assert.Equal(t, "ann@example.com", updated.Email)
		assert.Equal(t, "ann", updated.URLSlug)
	})

	t.Run("name_change_moves_slug", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)
		seed(t, repo)

		updated, err := service.UpdateProfile(context.Background(), "ann", people.UpdateInput{
			Name: pointer.To("Ann Renamed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "ann-renamed", updated.URLSlug)

		// The old address is gone, the new one works.
		_, err = service.GetBySlug(context.Background(), "ann")
		assert.True(t, apperr.IsNotFound(err))

		found, err := service.GetBySlug(context.Background(), "ann-renamed")
		require.NoError(t, err)
		assert.Equal(t, updated.ID, found.ID)
	})

	t.Run("email_change_rehashes_contact", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)
		seed(t, repo)

		updated, err := service.UpdateProfile(context.Background(), "ann", people.UpdateInput{
			Email: pointer.To("new@example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, people.ContactHash("new@example.com"), updated.ContactHash)
	})

	t.Run("skills_replace_the_whole_list", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)
		seed(t, repo)

		updated, err := service.UpdateProfile(context.Background(), "ann", people.UpdateInput{
			SkillsRaw: pointer.To("go, rust,  c++"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "rust", "c++"}, updated.Languages)
	})

	t.Run("clearing_name_fails_and_persists_nothing", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)
		seed(t, repo)
		savesBefore := repo.saveCalls

		_, err := service.UpdateProfile(context.Background(), "ann", people.UpdateInput{
			Name: pointer.To(""),
		})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.Equal(t, savesBefore, repo.saveCalls)

		kept, err := service.GetBySlug(context.Background(), "ann")
		require.NoError(t, err)
		assert.Equal(t, "Ann", kept.Name)
	})

	t.Run("unknown_slug", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)

		_, err := service.UpdateProfile(context.Background(), "nobody", people.UpdateInput{})
		assert.True(t, apperr.IsNotFound(err))
	})
}

/*
TestSplitSkills pins the comma-split / whitespace-strip transform, which
deliberately neither drops empty tokens nor dedupes.
*/
func TestSplitSkills(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"plain", "go,rust", []string{"go", "rust"}},
		{"padded", "go, rust,  c++", []string{"go", "rust", "c++"}},
		{"inner_whitespace_stripped", "objective c", []string{"objectivec"}},
		{"empty_tokens_kept", "go,,rust", []string{"go", "", "rust"}},
		{"duplicates_kept", "a ,a", []string{"a", "a"}},
		{"single_empty", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, people.SplitSkills(tt.raw))
		})
	}
}

/*
TestService_AttachProject checks ordering, validation, and whole-document
persistence of the embedded project list.
*/
func TestService_AttachProject(t *testing.T) {
	seed := func(t *testing.T, repo *fakeRepository) {
		t.Helper()
		person := &people.Person{ID: uuidv7.New(), Name: "Ann"}
		require.NoError(t, repo.Save(context.Background(), person))
	}

	t.Run("appends_in_order", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)
		seed(t, repo)

		_, err := service.AttachProject(context.Background(), "ann", people.Project{Name: "first"})
		require.NoError(t, err)

		updated, err := service.AttachProject(context.Background(), "ann", people.Project{Name: "second", URL: "https://example.com/second"})
		require.NoError(t, err)

		require.Len(t, updated.Projects, 2)
		assert.Equal(t, "first", updated.Projects[0].Name)
		assert.Equal(t, "second", updated.Projects[1].Name)
	})

	t.Run("rejects_nameless_project", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)
		seed(t, repo)

		_, err := service.AttachProject(context.Background(), "ann", people.Project{URL: "https://example.com"})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("rejects_relative_url", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestService(repo, nil)
		seed(t, repo)

		_, err := service.AttachProject(context.Background(), "ann", people.Project{Name: "thing", URL: "not a url"})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})
}

/*
TestService_Activate flips the gate flag through the one sanctioned path.
*/
func TestService_Activate(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, nil)

	person := &people.Person{ID: uuidv7.New(), Name: "Ann"}
	require.NoError(t, repo.Save(context.Background(), person))
	require.False(t, person.IsActive)

	activated, err := service.Activate(context.Background(), "ann")
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	kept, err := service.GetBySlug(context.Background(), "ann")
	require.NoError(t, err)
	assert.True(t, kept.IsActive)
}

/*
TestService_GitHubProjects passes the handle through to the source and
wraps failures.
*/
func TestService_GitHubProjects(t *testing.T) {
	t.Run("lists_from_source", func(t *testing.T) {
		source := &fakeProjectSource{projects: []people.Project{{Name: "repo-one"}}}
		service := newTestService(newFakeRepository(), source)

		projects, err := service.GitHubProjects(context.Background(), "annx")
		require.NoError(t, err)

		assert.Equal(t, "annx", source.handle)
		require.Len(t, projects, 1)
		assert.Equal(t, "repo-one", projects[0].Name)
	})

	t.Run("wraps_source_failure", func(t *testing.T) {
		source := &fakeProjectSource{err: errors.New("rate limited")}
		service := newTestService(newFakeRepository(), source)

		_, err := service.GitHubProjects(context.Background(), "annx")
		require.Error(t, err)
	})
}
