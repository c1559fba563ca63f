// Copyright (c) 2026 Brewcode. All rights reserved.

package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewcode/community/internal/platform/database/schema"
	"github.com/brewcode/community/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the canonical Postgres-backed job store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) CreatePost(ctx context.Context, post *JobPost) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, schema.JobPost.Table, strings.Join(schema.JobPost.Columns(), ", "))

	_, err := repository.pool.Exec(ctx, query,
		post.ID, post.Headline, post.CompanyName, post.Description,
		string(post.Category), post.InfoURL, post.ContactEmail,
		post.Technologies, post.DateCreated,
	)
	return dberr.Wrap(err, "create_job_post")
}

func (repository *PostgresRepository) GetPost(ctx context.Context, id string) (*JobPost, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, dberr.ErrNotFound
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, strings.Join(schema.JobPost.Columns(), ", "), schema.JobPost.Table, schema.JobPost.ID)

	post := &JobPost{}
	err = repository.pool.QueryRow(ctx, query, parsed).Scan(
		&post.ID, &post.Headline, &post.CompanyName, &post.Description,
		&post.Category, &post.InfoURL, &post.ContactEmail,
		&post.Technologies, &post.DateCreated,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_job_post")
	}

	return post, nil
}

func (repository *PostgresRepository) CreateRequest(ctx context.Context, request *JobRequest) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5)
	`, schema.JobRequest.Table, strings.Join(schema.JobRequest.Columns(), ", "))

	_, err := repository.pool.Exec(ctx, query,
		request.ID, request.Headline, string(request.Category),
		request.Technologies, request.DateCreated,
	)
	return dberr.Wrap(err, "create_job_request")
}

func (repository *PostgresRepository) ListPostsSince(ctx context.Context, cutoff time.Time) ([]*JobPost, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s >= $1
		ORDER BY %s DESC
	`, strings.Join(schema.JobPost.Columns(), ", "), schema.JobPost.Table,
		schema.JobPost.DateCreated, schema.JobPost.DateCreated)

	rows, err := repository.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, dberr.Wrap(err, "list_job_posts")
	}
	defer rows.Close()

	var posts []*JobPost
	for rows.Next() {
		post := &JobPost{}
		err := rows.Scan(
			&post.ID, &post.Headline, &post.CompanyName, &post.Description,
			&post.Category, &post.InfoURL, &post.ContactEmail,
			&post.Technologies, &post.DateCreated,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_job_post")
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (repository *PostgresRepository) ListRequestsSince(ctx context.Context, cutoff time.Time) ([]*JobRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s >= $1
		ORDER BY %s DESC
	`, strings.Join(schema.JobRequest.Columns(), ", "), schema.JobRequest.Table,
		schema.JobRequest.DateCreated, schema.JobRequest.DateCreated)

	rows, err := repository.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, dberr.Wrap(err, "list_job_requests")
	}
	defer rows.Close()

	var requests []*JobRequest
	for rows.Next() {
		request := &JobRequest{}
		err := rows.Scan(
			&request.ID, &request.Headline, &request.Category,
			&request.Technologies, &request.DateCreated,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_job_request")
		}
		requests = append(requests, request)
	}

	return requests, nil
}
