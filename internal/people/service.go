// Copyright (c) 2026 Brewcode. All rights reserved.

package people

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/brewcode/community/internal/platform/validate"
	"github.com/brewcode/community/pkg/slice"
	"github.com/brewcode/community/pkg/uuidv7"
)

// Service orchestrates directory use cases over the person repository.
type Service struct {
	repo     Repository
	projects ProjectSource
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repo Repository, projects ProjectSource, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
		logger:   logger,
	}
}

// List returns a page of the directory sorted by name.
func (service *Service) List(ctx context.Context, limit, offset int) ([]*Person, int, error) {
	return service.repo.List(ctx, limit, offset)
}

// GetBySlug returns the person at the given public address.
func (service *Service) GetBySlug(ctx context.Context, urlSlug string) (*Person, error) {
	return service.repo.FindBySlug(ctx, urlSlug)
}

// CreateInput holds the fields of a "new person" submission.
type CreateInput struct {
	Name        string
	Email       string
	IRC         string
	TwitterNick string
	GitHubNick  string
	Bio         string
}

// Create persists a brand-new person from an explicit submission.
//
// The account starts inactive like every other creation path; activation is
// a separate, explicit step.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Person, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	person := &Person{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Email:       input.Email,
		IRC:         input.IRC,
		TwitterNick: input.TwitterNick,
		GitHubNick:  input.GitHubNick,
		Bio:         input.Bio,
		IsActive:    false,
	}

	if err := service.repo.Save(ctx, person); err != nil {
		return nil, fmt.Errorf("person_create_failed: %w", err)
	}

	service.logger.Info("person_created", slog.String("url_slug", person.URLSlug))
	return person, nil
}

// UpdateInput is the mutable subset of profile fields. Nil pointers mean
// "field not supplied"; SkillsRaw is the freeform comma-separated string
// from the edit form.
type UpdateInput struct {
	Name        *string
	Email       *string
	IRC         *string
	TwitterNick *string
	GitHubNick  *string
	Bio         *string
	SkillsRaw   *string
}

// UpdateProfile applies a partial edit to the person at the given slug.
//
// Changing the name changes the derived slug and therefore the profile's
// public address; no redirect from the old slug is maintained. The updated
// person (with its possibly new slug) is returned so callers can point the
// client at the right place.
func (service *Service) UpdateProfile(ctx context.Context, urlSlug string, input UpdateInput) (*Person, error) {
	person, err := service.repo.FindBySlug(ctx, urlSlug)
	if err != nil {
		return nil, fmt.Errorf("person_update_lookup_failed: %w", err)
	}

	if input.Name != nil {
		person.Name = *input.Name
	}
	if input.Email != nil {
		person.Email = *input.Email
	}
	if input.IRC != nil {
		person.IRC = *input.IRC
	}
	if input.TwitterNick != nil {
		person.TwitterNick = *input.TwitterNick
	}
	if input.GitHubNick != nil {
		person.GitHubNick = *input.GitHubNick
	}
	if input.Bio != nil {
		person.Bio = *input.Bio
	}
	if input.SkillsRaw != nil {
		person.Languages = SplitSkills(*input.SkillsRaw)
	}

	if err := service.repo.Save(ctx, person); err != nil {
		return nil, fmt.Errorf("person_update_failed: %w", err)
	}

	service.logger.Info("person_updated",
		slog.String("url_slug", person.URLSlug),
		slog.Bool("slug_changed", person.URLSlug != urlSlug),
	)

	return person, nil
}

// AttachProject appends exactly one project to the person's list and
// persists the whole document. Duplicates are not checked; order of the
// existing projects is preserved and the new one goes last.
func (service *Service) AttachProject(ctx context.Context, urlSlug string, project Project) (*Person, error) {
	validator := &validate.Validator{}
	validator.Required(FieldProjectName, project.Name)
	if project.URL != "" {
		validator.URL(FieldProjectURL, project.URL)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	person, err := service.repo.FindBySlug(ctx, urlSlug)
	if err != nil {
		return nil, fmt.Errorf("project_attach_lookup_failed: %w", err)
	}

	person.Projects = append(person.Projects, project)

	if err := service.repo.Save(ctx, person); err != nil {
		return nil, fmt.Errorf("project_attach_failed: %w", err)
	}

	service.logger.Info("project_attached",
		slog.String("url_slug", person.URLSlug),
		slog.String("project", project.Name),
	)

	return person, nil
}

// Activate is the explicit administrative path that flips the
// authorization flag. No other flow ever sets IsActive.
func (service *Service) Activate(ctx context.Context, urlSlug string) (*Person, error) {
	person, err := service.repo.FindBySlug(ctx, urlSlug)
	if err != nil {
		return nil, fmt.Errorf("person_activate_lookup_failed: %w", err)
	}

	person.IsActive = true

	if err := service.repo.Save(ctx, person); err != nil {
		return nil, fmt.Errorf("person_activate_failed: %w", err)
	}

	service.logger.Info("person_activated", slog.String("url_slug", person.URLSlug))
	return person, nil
}

// GitHubProjects lists a user's public repositories in the embedded
// project shape, ready to be attached to a profile.
func (service *Service) GitHubProjects(ctx context.Context, githubHandle string) ([]Project, error) {
	projects, err := service.projects.PublicProjects(ctx, githubHandle)
	if err != nil {
		return nil, fmt.Errorf("github_projects_fetch_failed: %w", err)
	}
	return projects, nil
}

// SplitSkills turns the freeform comma-separated skills string into the
// tag list: split on comma, strip every whitespace rune from each token.
//
// That is ALL it does — no trimming of empty tokens and no deduplication:
// "a ,a" yields ["a","a"]. The form is the source of truth; the transform
// stays predictable rather than clever.
func SplitSkills(raw string) []string {
	return slice.Map(strings.Split(raw, ","), func(token string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, token)
	})
}
