package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/zakinadhif/cashierku/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper translates driver-level failures into domain error kinds.
// Repositories carry their own classifier for row-level constraint errors;
// this mapper serves the connection lifecycle (connect, ping, shutdown),
// where the sqlite and postgres drivers use different vocabularies.
type ErrorMapper struct{}

// NewErrorMapper creates an ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error kind. The operation
// name is folded into wrapped messages for the timeout family.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	msg := strings.ToLower(err.Error())
	switch {
	// postgres says "duplicate key", sqlite "unique constraint failed"
	case strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "unique constraint"):
		return domainErr.ErrDuplicateProductCode

	case strings.Contains(msg, "foreign key constraint"):
		return domainErr.ErrProductInUse

	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no connection"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "unable to open database"):
		return fmt.Errorf("%w: %s failed: %v", domainErr.ErrDatabaseConnection, operation, err)

	case strings.Contains(msg, "timeout"),
		strings.Contains(msg, "deadline exceeded"),
		strings.Contains(msg, "database is locked"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return domainErr.ErrInternalServer
	}
}
