package waypoints

import (
	"fmt"
	"strings"
)

// MaxNameLength is the store's limit on entry names. Enforced locally before
// any network call so that an over-long name never leaves the client.
const MaxNameLength = 16

// ValidateName validates an entry name against the store's rules:
// non-empty after trimming, at most MaxNameLength characters.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewValidationError("name cannot be empty")
	}
	if len([]rune(trimmed)) > MaxNameLength {
		return NewValidationError(fmt.Sprintf("name too long (max %d chars): %d chars", MaxNameLength, len([]rune(trimmed))))
	}
	return nil
}

// NormalizeName applies the store's name normalization: surrounding
// whitespace is dropped and interior spaces become underscores.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}
