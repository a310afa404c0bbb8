package relational

import (
	"strings"

	"cleanrecord/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for constraint error checking.
// GORM translates PostgreSQL errors; the modernc SQLite driver is matched by message.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint failed") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint failed") ||
		strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint failed") ||
		strings.Contains(errMsg, "23514") // PostgreSQL check_violation error code
}
