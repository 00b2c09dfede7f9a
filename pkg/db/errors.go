package db

import "strings"

// IsUniqueViolation reports whether the provided error references a unique
// constraint violation. An optional constraint name narrows the check to
// that constraint's text in the error message.
func IsUniqueViolation(err error, constraint ...string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if len(constraint) > 0 && constraint[0] != "" {
		return strings.Contains(msg, constraint[0])
	}
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
