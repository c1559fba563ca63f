// Copyright (c) 2026 Brewcode. All rights reserved.

// Package slug derives ASCII URL slugs from people's display names.
//
// # Usage
//
// Slugs are the public addresses of person profiles (e.g. "ann-oneil" for
// "Ann O'Neil"). The derivation is a pure function of the name: the same
// name always yields the same slug. Uniqueness is NOT enforced here — two
// identical names collide, which is a documented limitation of the lookup.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From converts a display name into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and removes combining marks (é → e).
// 2. Converts to lowercase.
// 3. Replaces every whitespace rune with a hyphen.
// 4. Strips everything that is not [a-z0-9-].
//
// Consecutive whitespace produces consecutive hyphens and hyphens are never
// trimmed; the slug mirrors the name's shape exactly.
func From(name string) string {
	// 1. Fold accents so "José" keeps its vowel instead of losing it.
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	folded, _, _ := transform.String(t, name)

	// 2. Lowercase
	lowered := strings.ToLower(folded)

	// 3 + 4. Whitespace to hyphen, drop anything else outside [a-z0-9-].
	var builder strings.Builder
	builder.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsSpace(r):
			builder.WriteByte('-')
		case r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			builder.WriteRune(r)
		}
	}

	return builder.String()
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
