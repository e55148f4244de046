package utils

import (
	"strings"

	"github.com/google/uuid"
)

// RandomToken returns a 32-char hex identifier used as the public lookup key
// of a check. Non-sequential on purpose: the token must not be guessable.
// The database still enforces uniqueness with a unique constraint.
func RandomToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
