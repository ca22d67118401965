package repository

import (
	"strings"
)

// ErrorClassifier inspects driver error messages. GORM surfaces sqlite and
// postgres constraint failures as plain errors with driver-specific text,
// so classification is by message vocabulary; both dialects are covered.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsDuplicateKeyError reports a unique constraint violation.
// postgres: "duplicate key value violates unique constraint",
// sqlite: "UNIQUE constraint failed: products.code".
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return matchesAny(err, "duplicate key", "unique constraint")
}

// IsForeignKeyError reports a foreign key violation.
// postgres: "violates foreign key constraint",
// sqlite: "FOREIGN KEY constraint failed".
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	return matchesAny(err, "foreign key constraint", "violates foreign key")
}

// IsConnectionError reports the store being unreachable or contended,
// as opposed to a statement-level failure
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	return matchesAny(err,
		"connection",
		"dial",
		"network",
		"unable to open database",
		"database is locked",
		"timeout",
		"broken pipe",
		"server closed",
		"eof",
	)
}

func matchesAny(err error, patterns ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range patterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
