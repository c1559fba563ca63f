// Copyright (c) 2026 Brewcode. All rights reserved.

package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/brewcode/community/internal/platform/constants"
	"github.com/brewcode/community/internal/platform/validate"
	"github.com/brewcode/community/pkg/slice"
	"github.com/brewcode/community/pkg/uuidv7"
)

// Service orchestrates job board use cases over the job repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// PostInput holds the fields of a company's opening submission.
// TechnologiesRaw is the freeform comma-separated tag string.
type PostInput struct {
	Headline        string
	CompanyName     string
	Description     string
	Category        string
	InfoURL         string
	ContactEmail    string
	TechnologiesRaw string
}

// CreatePost validates and stores a company opening. The creation
// timestamp is stamped server-side.
func (service *Service) CreatePost(ctx context.Context, input PostInput) (*JobPost, error) {
	validator := &validate.Validator{}
	validator.Required(FieldHeadline, input.Headline).MaxLen(FieldHeadline, input.Headline, 200)
	validator.Required(FieldCompanyName, input.CompanyName)
	validator.OneOf(FieldCategory, input.Category, Categories()...)
	if input.ContactEmail != "" {
		validator.Email(FieldContactEmail, input.ContactEmail)
	}
	if input.InfoURL != "" {
		validator.URL(FieldInfoURL, input.InfoURL)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	post := &JobPost{
		ID:           uuidv7.New(),
		Headline:     input.Headline,
		CompanyName:  input.CompanyName,
		Description:  input.Description,
		Category:     Category(input.Category),
		InfoURL:      input.InfoURL,
		ContactEmail: input.ContactEmail,
		Technologies: SplitTechnologies(input.TechnologiesRaw),
		DateCreated:  service.now(),
	}

	if err := service.repo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("job_post_create_failed: %w", err)
	}

	service.logger.Info("job_post_created",
		slog.String("id", post.ID),
		slog.String("category", string(post.Category)),
	)

	return post, nil
}

// GetPost returns one opening by ID for the detail page.
func (service *Service) GetPost(ctx context.Context, id string) (*JobPost, error) {
	return service.repo.GetPost(ctx, id)
}

// RequestInput holds the fields of a member's availability submission.
type RequestInput struct {
	Headline        string
	Category        string
	TechnologiesRaw string
}

// CreateRequest validates and stores an availability listing. Both listing
// kinds get the same server-side timestamp treatment.
func (service *Service) CreateRequest(ctx context.Context, input RequestInput) (*JobRequest, error) {
	validator := &validate.Validator{}
	validator.Required(FieldHeadline, input.Headline).MaxLen(FieldHeadline, input.Headline, 200)
	validator.OneOf(FieldCategory, input.Category, Categories()...)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	request := &JobRequest{
		ID:           uuidv7.New(),
		Headline:     input.Headline,
		Category:     Category(input.Category),
		Technologies: SplitTechnologies(input.TechnologiesRaw),
		DateCreated:  service.now(),
	}

	if err := service.repo.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("job_request_create_failed: %w", err)
	}

	service.logger.Info("job_request_created",
		slog.String("id", request.ID),
		slog.String("category", string(request.Category)),
	)

	return request, nil
}

// Board assembles the job board page: fresh openings, fresh availability
// listings, and the union of technology tags across both. The two queries
// run one after the other; the page is read rarely enough that fan-out
// buys nothing.
func (service *Service) Board(ctx context.Context) (*Board, error) {
	cutoff := service.now().Add(-constants.JobBoardWindow)

	posts, err := service.repo.ListPostsSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("job_board_posts_failed: %w", err)
	}

	requests, err := service.repo.ListRequestsSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("job_board_requests_failed: %w", err)
	}

	var tags []string
	for _, post := range posts {
		tags = append(tags, post.Technologies...)
	}
	for _, request := range requests {
		tags = append(tags, request.Technologies...)
	}

	return &Board{
		Posts:        posts,
		Requests:     requests,
		Technologies: slice.Unique(tags),
	}, nil
}

// SplitTechnologies turns the freeform comma-separated tag string into the
// tag list: split on comma, trim surrounding whitespace per token. Empty
// input yields an empty list, never nil — the tag columns are NOT NULL
// arrays and pgx encodes a nil slice as SQL NULL.
func SplitTechnologies(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return slice.Map(strings.Split(raw, ","), strings.TrimSpace)
}
