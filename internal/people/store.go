// Copyright (c) 2026 Brewcode. All rights reserved.

package people

import "context"

// AlternateIdentity is the OR-match criteria used to locate a Person by
// fields other than the slug. Empty fields are not part of the match.
type AlternateIdentity struct {
	Name        string
	TwitterNick string
	GitHubNick  string
	Email       string
}

// Empty reports whether no criterion was supplied at all.
func (a AlternateIdentity) Empty() bool {
	return a.Name == "" && a.TwitterNick == "" && a.GitHubNick == "" && a.Email == ""
}

// Repository defines the data access contract for person records.
//
// # Review Process
//
// This interface is placed in a separate file from person.go so entity
// changes and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresRepository]).
type Repository interface {
	// FindByID returns the person with the given ID string.
	//
	// Returns [apperr.NotFound] for unknown or malformed IDs.
	FindByID(ctx context.Context, id string) (*Person, error)

	// FindBySlug returns the person addressed by the given URL slug.
	//
	// Returns [apperr.NotFound] if no profile has that slug. Slugs are not
	// unique; when two names collide, the first record by storage order
	// wins — callers must not depend on the tie-break.
	FindBySlug(ctx context.Context, urlSlug string) (*Person, error)

	// FindByAny returns the first person matching ANY of the supplied
	// criteria fields (logical OR, empty fields ignored, first match by
	// storage order).
	//
	// Returns [apperr.NotFound] when nothing matches or no criteria were
	// supplied.
	FindByAny(ctx context.Context, criteria AlternateIdentity) (*Person, error)

	// Save persists the whole person document, embedded projects included,
	// inserting or updating by ID.
	//
	// Save runs [Normalize] before touching storage: derived fields are
	// always consistent with the raw ones, and an empty name fails with a
	// validation error leaving storage untouched.
	Save(ctx context.Context, person *Person) error

	// List returns people ordered by name, plus the total count for
	// pagination.
	List(ctx context.Context, limit, offset int) ([]*Person, int, error)
}
