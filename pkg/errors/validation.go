package errors

import (
	"strings"
	"unicode"
)

// ValidateReleaseID checks that a release identifier is safe to place in a
// URL path segment and a local file name.
//
// The rules are conservative:
//   - No empty identifiers
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
//
// Membership in the remote release list is checked separately.
func ValidateReleaseID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidArgument, "release id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidArgument, "release id too long (max 64 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidArgument, "release id %q contains invalid characters", id)
		}
	}

	for _, pattern := range []string{"..", "/", "\\", "?", "#"} {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidArgument, "release id %q contains invalid characters: %q", id, pattern)
		}
	}

	return nil
}

// OneOf returns an INVALID_ARGUMENT error naming value and the allowed set
// unless value is a member of allowed.
func OneOf(kind, value string, allowed []string) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return New(ErrCodeInvalidArgument, "invalid %s %q (available: %s)", kind, value, strings.Join(allowed, ", "))
}
