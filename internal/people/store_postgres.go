// Copyright (c) 2026 Brewcode. All rights reserved.

/*
Package people (Postgres) implements the storage layer for person records.

# Schema Table Mapping
  - people.person: the whole person document, with the embedded project
    list stored as an ordered JSONB array on the row. One row per person
    keeps every save a single-document write (per-row atomicity; concurrent
    edits to the same person are last-write-wins).
*/
package people

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewcode/community/internal/platform/database/schema"
	"github.com/brewcode/community/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the canonical Postgres-backed person store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// personColumns is the SELECT list shared by every read query.
func personColumns() string {
	return strings.Join(schema.Person.Columns(), ", ")
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Person, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, dberr.ErrNotFound
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, personColumns(), schema.Person.Table, schema.Person.ID)

	person, err := scanPerson(repository.pool.QueryRow(ctx, query, parsed))
	if err != nil {
		return nil, dberr.Wrap(err, "find_person_by_id")
	}

	return person, nil
}

func (repository *PostgresRepository) FindBySlug(ctx context.Context, urlSlug string) (*Person, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
		LIMIT 1
	`, personColumns(), schema.Person.Table, schema.Person.URLSlug, schema.Person.ID)

	person, err := scanPerson(repository.pool.QueryRow(ctx, query, urlSlug))
	if err != nil {
		return nil, dberr.Wrap(err, "find_person_by_slug")
	}

	return person, nil
}

func (repository *PostgresRepository) FindByAny(ctx context.Context, criteria AlternateIdentity) (*Person, error) {
	if criteria.Empty() {
		return nil, dberr.ErrNotFound
	}

	conditions := []string{}
	args := []any{}

	appendCondition := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, column+" = $"+strconv.Itoa(len(args)))
	}

	appendCondition(schema.Person.Name, criteria.Name)
	appendCondition(schema.Person.TwitterNick, criteria.TwitterNick)
	appendCondition(schema.Person.GitHubNick, criteria.GitHubNick)
	appendCondition(schema.Person.Email, criteria.Email)

	// First match by storage order; uuidv7 keys sort by insertion time.
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY %s ASC
		LIMIT 1
	`, personColumns(), schema.Person.Table, strings.Join(conditions, " OR "), schema.Person.ID)

	person, err := scanPerson(repository.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, "find_person_by_any")
	}

	return person, nil
}

func (repository *PostgresRepository) Save(ctx context.Context, person *Person) error {
	// Derived fields (slug, contact hash) must be consistent with the raw
	// ones on every write; an empty name aborts before storage is touched.
	if err := Normalize(person); err != nil {
		return err
	}

	projectsJSON, err := json.Marshal(person.Projects)
	if err != nil {
		return fmt.Errorf("save_person_encode_projects: %w", err)
	}
	// A nil project list marshals to the JSON null literal; store the empty
	// array the column default promises instead.
	if person.Projects == nil {
		projectsJSON = []byte("[]")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = NOW()
		RETURNING %s, %s
	`,
		schema.Person.Table, strings.Join(schema.Person.Columns(), ", "),
		schema.Person.ID,
		schema.Person.Name, schema.Person.Name,
		schema.Person.Email, schema.Person.Email,
		schema.Person.ContactHash, schema.Person.ContactHash,
		schema.Person.IRC, schema.Person.IRC,
		schema.Person.TwitterNick, schema.Person.TwitterNick,
		schema.Person.GitHubNick, schema.Person.GitHubNick,
		schema.Person.Bio, schema.Person.Bio,
		schema.Person.URLSlug, schema.Person.URLSlug,
		schema.Person.PasswordHash, schema.Person.PasswordHash,
		schema.Person.Languages, schema.Person.Languages,
		schema.Person.Projects, schema.Person.Projects,
		schema.Person.IsActive, schema.Person.IsActive,
		schema.Person.UpdatedAt,
		schema.Person.CreatedAt, schema.Person.UpdatedAt,
	)

	err = repository.pool.QueryRow(ctx, query,
		person.ID, person.Name, person.Email, person.ContactHash,
		person.IRC, person.TwitterNick, person.GitHubNick, person.Bio,
		person.URLSlug, person.PasswordHash, person.Languages,
		projectsJSON, person.IsActive,
	).Scan(&person.CreatedAt, &person.UpdatedAt)

	return dberr.Wrap(err, "save_person")
}

func (repository *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*Person, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Person.Table)

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_people")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2
	`, personColumns(), schema.Person.Table, schema.Person.Name)

	rows, err := repository.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_people")
	}
	defer rows.Close()

	var persons []*Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_person")
		}
		persons = append(persons, person)
	}

	return persons, total, nil
}

// scanPerson hydrates one Person from a row following the Columns() order.
func scanPerson(row pgx.Row) (*Person, error) {
	person := &Person{}
	var projectsJSON []byte

	err := row.Scan(
		&person.ID, &person.Name, &person.Email, &person.ContactHash,
		&person.IRC, &person.TwitterNick, &person.GitHubNick, &person.Bio,
		&person.URLSlug, &person.PasswordHash, &person.Languages,
		&projectsJSON, &person.IsActive, &person.CreatedAt, &person.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(projectsJSON) > 0 {
		if err := json.Unmarshal(projectsJSON, &person.Projects); err != nil {
			return nil, fmt.Errorf("decode_person_projects: %w", err)
		}
	}

	return person, nil
}
