// Copyright (c) 2026 Brewcode. All rights reserved.

// Package schema centralizes table and column names so repository queries
// never embed raw string literals.
package schema

// PersonTable represents the 'people.person' table
type PersonTable struct {
	Table        string
	ID           string
	Name         string
	Email        string
	ContactHash  string
	IRC          string
	TwitterNick  string
	GitHubNick   string
	Bio          string
	URLSlug      string
	PasswordHash string
	Languages    string
	Projects     string
	IsActive     string
	CreatedAt    string
	UpdatedAt    string
}

// Person is the schema definition for people.person
var Person = PersonTable{
	Table:        "people.person",
	ID:           "id",
	Name:         "name",
	Email:        "email",
	ContactHash:  "contacthash",
	IRC:          "irc",
	TwitterNick:  "twitternick",
	GitHubNick:   "githubnick",
	Bio:          "bio",
	URLSlug:      "urlslug",
	PasswordHash: "passwordhash",
	Languages:    "languages",
	Projects:     "projects",
	IsActive:     "isactive",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t PersonTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.ContactHash, t.IRC, t.TwitterNick,
		t.GitHubNick, t.Bio, t.URLSlug, t.PasswordHash, t.Languages,
		t.Projects, t.IsActive, t.CreatedAt, t.UpdatedAt,
	}
}
