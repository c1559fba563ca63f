// Copyright (c) 2026 Brewcode. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewcode/community/internal/platform/apperr"
)

/*
TestNotFound_Message pins the constructor contract: the argument is a
resource noun and the constructor appends the verdict, so callers must not
pass full sentences.
*/
func TestNotFound_Message(t *testing.T) {
	assert.Equal(t, "Session not found", apperr.NotFound("Session").Error())
	assert.Equal(t, "Login state not found", apperr.NotFound("Login state").Error())
	assert.Equal(t, "Person not found", apperr.NotFound("Person").Error())
}

/*
TestAs_TraversesWrapping verifies that code checks survive fmt.Errorf
wrapping on the way up the call stack.
*/
func TestAs_TraversesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("lookup_failed: %w", apperr.NotFound("Person"))

	require.True(t, apperr.IsNotFound(wrapped))
	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)

	assert.Nil(t, apperr.As(errors.New("plain failure")))
}
