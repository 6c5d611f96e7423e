package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error (requires TranslateError on the dialector)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// 23505 is PostgreSQL's unique_violation code; operators may add a unique index on users.email.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23505") || strings.Contains(errMsg, "duplicate key")
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
