// Copyright (c) 2026 Brewcode. All rights reserved.

/*
Package people is the core domain of the community directory.

It owns the Person entity and the three pieces of logic with real
invariants: the pre-save normalizer (slug and contact-hash derivation), the
account resolver (find-or-create against external identity payloads), and
the profile service (edits, project attachment, activation).

# Architecture

  - Entities: Person, Project (embedded).
  - Repository: explicit interface, constructed once at startup and passed
    by reference — no ambient global model registry.
  - Resolver: a named component tagged by provider kind, decoupled from any
    specific identity-provider plugin.
*/
package people

import "time"

// Person represents a member of the community directory.
//
// # Rules
//   - URLSlug is derived from Name on every save and is the public address
//     of the profile. It is NOT guaranteed unique: two identical names
//     collide, which is a documented limitation of the directory.
//   - ContactHash is derived from Email on every save when Email is set.
//   - IsActive gates authorization. Accounts created through external
//     identity linking or registration start inactive.
type Person struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	ContactHash  string    `json:"contact_hash,omitempty"`
	IRC          string    `json:"irc,omitempty"`
	TwitterNick  string    `json:"twitter_nick,omitempty"`
	GitHubNick   string    `json:"github_nick,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	URLSlug      string    `json:"url_slug"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Languages    []string  `json:"languages"`
	Projects     []Project `json:"projects"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Project is a piece of work shown on a person's profile.
//
// Projects are embedded in their owner: they have no identity outside the
// Person document and are persisted as an ordered list alongside it.
type Project struct {
	Name        string `json:"name"`
	URL         string `json:"project_url"`
	Description string `json:"description"`
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldBio         = "bio"
	FieldSkills      = "skills"
	FieldProjectName = "project_name"
	FieldProjectURL  = "project_url"
)
