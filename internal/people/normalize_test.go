// Copyright (c) 2026 Brewcode. All rights reserved.

package people_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewcode/community/internal/people"
	"github.com/brewcode/community/internal/platform/apperr"
)

/*
TestNormalize_DerivesSlugAndContactHash checks both derived fields after a
normal pass.
*/
func TestNormalize_DerivesSlugAndContactHash(t *testing.T) {
	person := &people.Person{
		Name:  "Ann O'Neil",
		Email: "ann@example.com",
	}

	require.NoError(t, people.Normalize(person))

	assert.Equal(t, "ann-oneil", person.URLSlug)
	assert.Equal(t, people.ContactHash("ann@example.com"), person.ContactHash)
}

/*
TestNormalize_EmptyName asserts that a nameless person never normalizes.
*/
func TestNormalize_EmptyName(t *testing.T) {
	person := &people.Person{Email: "ann@example.com"}

	err := people.Normalize(person)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, people.FieldName, ae.Details[0].Field)

	// Nothing was derived on the failing pass.
	assert.Empty(t, person.URLSlug)
	assert.Empty(t, person.ContactHash)
}

/*
TestNormalize_NoEmail verifies the contact hash is only derived when an
email is present.
*/
func TestNormalize_NoEmail(t *testing.T) {
	person := &people.Person{Name: "Ann"}

	require.NoError(t, people.Normalize(person))

	assert.Equal(t, "ann", person.URLSlug)
	assert.Empty(t, person.ContactHash)
}

/*
TestNormalize_Idempotent runs normalization twice and expects identical
output.
*/
func TestNormalize_Idempotent(t *testing.T) {
	person := &people.Person{Name: "Bob Tables", Email: "bob@example.com"}

	require.NoError(t, people.Normalize(person))
	firstSlug, firstHash := person.URLSlug, person.ContactHash

	require.NoError(t, people.Normalize(person))
	assert.Equal(t, firstSlug, person.URLSlug)
	assert.Equal(t, firstHash, person.ContactHash)
}

/*
TestNormalize_DefaultsLanguageList guards the storage contract for the tag
list: the column is a NOT NULL array, so a person must never reach the
store with a nil list.
*/
func TestNormalize_DefaultsLanguageList(t *testing.T) {
	person := &people.Person{Name: "Ann"}

	require.NoError(t, people.Normalize(person))
	require.NotNil(t, person.Languages)
	assert.Empty(t, person.Languages)

	// An existing list passes through untouched.
	person.Languages = []string{"go", "rust"}
	require.NoError(t, people.Normalize(person))
	assert.Equal(t, []string{"go", "rust"}, person.Languages)
}

/*
TestContactHash pins the digest format: lowercase hex, depends only on the
email string.
*/
func TestContactHash(t *testing.T) {
	hash := people.ContactHash("ann@example.com")

	assert.Len(t, hash, 32)
	assert.Equal(t, hash, people.ContactHash("ann@example.com"))
	assert.NotEqual(t, hash, people.ContactHash("other@example.com"))
	assert.Regexp(t, "^[0-9a-f]{32}$", hash)
}
