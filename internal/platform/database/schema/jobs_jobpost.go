// Copyright (c) 2026 Brewcode. All rights reserved.

package schema

// JobPostTable represents the 'jobs.jobpost' table
type JobPostTable struct {
	Table        string
	ID           string
	Headline     string
	CompanyName  string
	Description  string
	Category     string
	InfoURL      string
	ContactEmail string
	Technologies string
	DateCreated  string
}

// JobPost is the schema definition for jobs.jobpost
var JobPost = JobPostTable{
	Table:        "jobs.jobpost",
	ID:           "id",
	Headline:     "headline",
	CompanyName:  "companyname",
	Description:  "description",
	Category:     "category",
	InfoURL:      "infourl",
	ContactEmail: "contactemail",
	Technologies: "technologies",
	DateCreated:  "datecreated",
}

// Columns returns all standard column names
func (t JobPostTable) Columns() []string {
	return []string{
		t.ID, t.Headline, t.CompanyName, t.Description, t.Category,
		t.InfoURL, t.ContactEmail, t.Technologies, t.DateCreated,
	}
}
