// Copyright (c) 2026 Brewcode. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brewcode/community/pkg/slug"
)

/*
TestFrom_Examples verifies the exact slug shape for representative names.
*/
func TestFrom_Examples(t *testing.T) {
	cases := map[string]string{
		"Ann":          "ann",
		"Ann O'Neil":   "ann-oneil",
		"José García":  "jose-garcia",
		"C3PO":         "c3po",
		"a  b":         "a--b", // every whitespace rune becomes a hyphen
		"Already-Slug": "already-slug",
		"":             "",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, slug.From(input), "input %q", input)
	}
}

/*
TestFrom_Charset verifies that output contains only lowercase [a-z0-9-].
*/
func TestFrom_Charset(t *testing.T) {
	inputs := []string{"Ann O'Neil", "Łukasz\tNowak", "漢字 name", "UP CASE 42!"}

	for _, input := range inputs {
		result := slug.From(input)
		for _, r := range result {
			valid := r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
			assert.True(t, valid, "rune %q in slug %q", r, result)
		}
	}
}

/*
TestFrom_Deterministic verifies that repeated calls yield the same slug.
*/
func TestFrom_Deterministic(t *testing.T) {
	assert.Equal(t, slug.From("Ann O'Neil"), slug.From("Ann O'Neil"))
}
