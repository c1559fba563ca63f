// Copyright (c) 2026 Brewcode. All rights reserved.

package schema

// JobRequestTable represents the 'jobs.jobrequest' table
type JobRequestTable struct {
	Table        string
	ID           string
	Headline     string
	Category     string
	Technologies string
	DateCreated  string
}

// JobRequest is the schema definition for jobs.jobrequest
var JobRequest = JobRequestTable{
	Table:        "jobs.jobrequest",
	ID:           "id",
	Headline:     "headline",
	Category:     "category",
	Technologies: "technologies",
	DateCreated:  "datecreated",
}

// Columns returns all standard column names
func (t JobRequestTable) Columns() []string {
	return []string{t.ID, t.Headline, t.Category, t.Technologies, t.DateCreated}
}
