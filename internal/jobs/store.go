// Copyright (c) 2026 Brewcode. All rights reserved.

package jobs

import (
	"context"
	"time"
)

// Repository defines the data access contract for job board records.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresRepository]).
type Repository interface {
	// CreatePost inserts a new opening.
	CreatePost(ctx context.Context, post *JobPost) error

	// GetPost returns one opening by ID, or [apperr.NotFound].
	GetPost(ctx context.Context, id string) (*JobPost, error)

	// CreateRequest inserts a new availability listing.
	CreateRequest(ctx context.Context, request *JobRequest) error

	// ListPostsSince returns openings created at or after the cutoff,
	// newest first.
	ListPostsSince(ctx context.Context, cutoff time.Time) ([]*JobPost, error)

	// ListRequestsSince returns availability listings created at or after
	// the cutoff, newest first.
	ListRequestsSince(ctx context.Context, cutoff time.Time) ([]*JobRequest, error)
}
