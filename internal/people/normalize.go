// Copyright (c) 2026 Brewcode. All rights reserved.

package people

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/brewcode/community/internal/platform/validate"
	"github.com/brewcode/community/pkg/slug"
)

// Normalize derives the computed Person fields immediately before every
// persistence:
//
//  1. ContactHash = MD5(Email) as lowercase hex when Email is set; left
//     untouched as empty otherwise (not an error — the avatar service
//     simply has nothing to key on).
//  2. URLSlug from Name. Name must be non-empty: a person without a name
//     has no address, so normalization fails with a validation error and
//     nothing may be persisted.
//  3. A nil Languages list becomes an empty one. The column is a NOT NULL
//     array, and pgx encodes a nil slice as SQL NULL rather than '{}'.
//
// Normalize mutates only derived fields and is idempotent.
func Normalize(person *Person) error {
	if person.Name == "" {
		return validate.RequiredError(FieldName, "This field is required")
	}

	if person.Email != "" {
		person.ContactHash = ContactHash(person.Email)
	}

	person.URLSlug = slug.From(person.Name)

	if person.Languages == nil {
		person.Languages = []string{}
	}
	return nil
}

// ContactHash computes the lowercase-hex MD5 digest of an email address,
// the key format expected by gravatar-style avatar services. MD5 is a
// compatibility requirement of that ecosystem, not a security choice.
func ContactHash(email string) string {
	digest := md5.Sum([]byte(email))
	return hex.EncodeToString(digest[:])
}
