// Package repository implements the data access layer for the application.
package repository

import (
	"errors"
	"strings"

	"studysmarter/internal/models"

	"gorm.io/gorm"
)

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; sqlite reports "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// mapWriteError converts a GORM write error into the application taxonomy.
func mapWriteError(err error, conflictMessage string) error {
	if err == nil {
		return nil
	}
	if isUniqueConstraintError(err) {
		return models.NewConflictError(conflictMessage)
	}
	return models.NewInternalError(err)
}

// mapLookupError converts a GORM read error into the application taxonomy.
func mapLookupError(err error, resource string, id interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return models.NewInternalError(err)
}
