// Copyright (c) 2026 Brewcode. All rights reserved.

/*
Package jobs implements the community job board: companies post openings,
members post availability, and the board shows both sides of the last
thirty days together with the technology tags in play.
*/
package jobs

import "time"

// Category classifies the employment arrangement of a posting.
type Category string

const (
	CategoryFullTime  Category = "ft"
	CategoryPartTime  Category = "pt"
	CategoryFreelance Category = "fl"
	CategoryContract  Category = "ct"
)

// Categories lists every valid category code, for validation.
func Categories() []string {
	return []string{
		string(CategoryFullTime),
		string(CategoryPartTime),
		string(CategoryFreelance),
		string(CategoryContract),
	}
}

// JobPost is an opening advertised by a company.
type JobPost struct {
	ID           string    `json:"id"`
	Headline     string    `json:"headline"`
	CompanyName  string    `json:"company_name"`
	Description  string    `json:"description"`
	Category     Category  `json:"category"`
	InfoURL      string    `json:"info_url"`
	ContactEmail string    `json:"contact_email"`
	Technologies []string  `json:"technologies"`
	DateCreated  time.Time `json:"date_created"`
}

// JobRequest is a member advertising their availability.
type JobRequest struct {
	ID           string    `json:"id"`
	Headline     string    `json:"headline"`
	Category     Category  `json:"category"`
	Technologies []string  `json:"technologies"`
	DateCreated  time.Time `json:"date_created"`
}

// Board is the combined view the job board page renders: both listing
// kinds restricted to the freshness window, plus the union of every
// technology tag appearing on either side.
type Board struct {
	Posts        []*JobPost    `json:"job_posts"`
	Requests     []*JobRequest `json:"job_requests"`
	Technologies []string      `json:"technologies"`
}

// Validation field names as they appear in request payloads.
const (
	FieldHeadline     = "headline"
	FieldCompanyName  = "company_name"
	FieldCategory     = "category"
	FieldContactEmail = "contact_email"
	FieldInfoURL      = "info_url"
)
