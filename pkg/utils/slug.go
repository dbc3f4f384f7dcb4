package utils

import (
	"errors"
)

const MaxSlugLength = 200

var (
	EmptySlugError   = errors.New("slug is required")
	SlugTooLongError = errors.New("slug is too long")
)

// CheckSlug reports whether s is usable as a content slug. Any characters are
// allowed; only the empty string and slugs longer than MaxSlugLength bytes are rejected.
func CheckSlug(s string) error {
	if len(s) == 0 {
		return EmptySlugError
	}
	if len(s) > MaxSlugLength {
		return SlugTooLongError
	}

	return nil
}
