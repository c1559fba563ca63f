// Copyright (c) 2026 Brewcode. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewcode/community/internal/platform/apperr"
	"github.com/brewcode/community/internal/platform/validate"
)

/*
TestValidator_Passes verifies that a fully valid chain returns nil.
*/
func TestValidator_Passes(t *testing.T) {
	v := &validate.Validator{}

	v.Required("name", "Ann").
		MaxLen("name", "Ann", 200).
		Email("email", "ann@example.com").
		Slug("slug", "ann-oneil").
		OneOf("category", "ft", "ft", "pt", "fl", "ct")

	assert.NoError(t, v.Err())
	assert.False(t, v.HasErrors())
}

/*
TestValidator_CollectsAllFailures verifies that every failed rule is
reported in a single VALIDATION_ERROR with per-field details.
*/
func TestValidator_CollectsAllFailures(t *testing.T) {
	v := &validate.Validator{}

	v.Required("name", "  ").
		Email("email", "not-an-email").
		OneOf("category", "weekend", "ft", "pt", "fl", "ct")

	err := v.Err()
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Len(t, appError.Details, 3)
}

/*
TestValidator_Slug verifies slug charset enforcement.
*/
func TestValidator_Slug(t *testing.T) {
	valid := &validate.Validator{}
	valid.Slug("slug", "ann-42")
	assert.NoError(t, valid.Err())

	invalid := &validate.Validator{}
	invalid.Slug("slug", "Ann O'Neil")
	assert.Error(t, invalid.Err())
}

/*
TestValidator_URL verifies absolute-URL enforcement.
*/
func TestValidator_URL(t *testing.T) {
	valid := &validate.Validator{}
	valid.URL("info_url", "https://example.com/jobs")
	assert.NoError(t, valid.Err())

	invalid := &validate.Validator{}
	invalid.URL("info_url", "/relative/path")
	assert.Error(t, invalid.Err())
}
