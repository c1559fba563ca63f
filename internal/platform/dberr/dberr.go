// Copyright (c) 2026 Brewcode. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/brewcode/community/internal/platform/apperr"
)

var (
	// ErrNotFound is the standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful
// [apperr.AppError]. It hides internal database details from the client
// while classifying the error type. The action label travels with the cause
// for server-side logs only.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Unique violations surface as conflicts
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperr.Conflict("Record already exists")
	}

	// 3. Everything else is an internal storage failure
	return apperr.Internal(&actionError{action: action, cause: err})
}

// actionError annotates a storage failure with the repository action that
// produced it, so 5xx logs identify the failing query.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string { return e.action + ": " + e.cause.Error() }
func (e *actionError) Unwrap() error { return e.cause }
