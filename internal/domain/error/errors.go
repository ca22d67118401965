package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInvalidProductCode   = 4001
	CodeNegativePrice        = 4002
	CodeInvalidQuantity      = 4003
	CodeEmptyTransaction     = 4004
	CodeInvalidProductID     = 4005
	CodeInvalidTransactionID = 4006
	CodeTooManyItems         = 4007
	CodeProductNotFound      = 4040
	CodeTransactionNotFound  = 4041
	CodeUnsupportedOperation = 4050
	CodeDuplicateProductCode = 4090
	CodeProductInUse         = 4091

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrProductNotFound is returned when the referenced product doesn't exist
	ErrProductNotFound = errors.New("product not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateProductCode is returned when a product code is already taken
	ErrDuplicateProductCode = errors.New("product code already exists")

	// ErrProductInUse is returned when deleting a product that transaction items still reference
	ErrProductInUse = errors.New("product is referenced by transaction items")

	// ErrInvalidProductCode is returned when the product code is empty
	ErrInvalidProductCode = errors.New("product code cannot be empty")

	// ErrNegativePrice is returned when a product price is negative
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidQuantity is returned when a line item quantity is not positive
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrEmptyTransaction is returned when a transaction is created without items
	ErrEmptyTransaction = errors.New("transaction must contain at least one item")

	// ErrTooManyItems is returned when a transaction exceeds the configured item cap
	ErrTooManyItems = errors.New("transaction exceeds the item limit")

	// ErrInvalidProductID is returned when the product ID is not a positive integer
	ErrInvalidProductID = errors.New("product ID must be positive")

	// ErrInvalidTransactionID is returned when the transaction ID is not a positive integer
	ErrInvalidTransactionID = errors.New("transaction ID must be positive")

	// ErrUnsupportedOperation is returned for contract variants with no defined semantics
	ErrUnsupportedOperation = errors.New("operation is not supported")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidProductCode):
		return CodeInvalidProductCode
	case errors.Is(err, ErrNegativePrice):
		return CodeNegativePrice
	case errors.Is(err, ErrInvalidQuantity):
		return CodeInvalidQuantity
	case errors.Is(err, ErrEmptyTransaction):
		return CodeEmptyTransaction
	case errors.Is(err, ErrTooManyItems):
		return CodeTooManyItems
	case errors.Is(err, ErrInvalidProductID):
		return CodeInvalidProductID
	case errors.Is(err, ErrInvalidTransactionID):
		return CodeInvalidTransactionID
	case errors.Is(err, ErrDuplicateProductCode):
		return CodeDuplicateProductCode
	case errors.Is(err, ErrProductInUse):
		return CodeProductInUse
	case errors.Is(err, ErrProductNotFound):
		return CodeProductNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrUnsupportedOperation):
		return CodeUnsupportedOperation
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// ProductError represents an error related to a catalog operation
type ProductError struct {
	ProductID uint64
	Code      string
	Err       error
}

// Error implements the error interface for ProductError
func (e *ProductError) Error() string {
	return fmt.Sprintf("catalog operation failed for product %d (code: %s): %v",
		e.ProductID, e.Code, e.Err)
}

// Unwrap returns the underlying error
func (e *ProductError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ProductError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "product_error",
		"product_id": e.ProductID,
		"code":       e.Code,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewProductError creates a detailed catalog error
func NewProductError(productID uint64, code string, err error) error {
	return &ProductError{
		ProductID: productID,
		Code:      code,
		Err:       err,
	}
}

// LedgerError represents an error related to transaction recording
type LedgerError struct {
	TransactionID uint64
	ProductID     uint64
	Reason        string
	Err           error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger error for transaction %d (product: %d): %s - %v",
		e.TransactionID, e.ProductID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "ledger_error",
		"transaction_id": e.TransactionID,
		"product_id":     e.ProductID,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(transactionID, productID uint64, reason string, err error) error {
	return &LedgerError{
		TransactionID: transactionID,
		ProductID:     productID,
		Reason:        reason,
		Err:           err,
	}
}

// DuplicateProductCodeError provides detailed information about code collisions
type DuplicateProductCodeError struct {
	Code string
}

// Error implements the error interface
func (e *DuplicateProductCodeError) Error() string {
	return fmt.Sprintf("duplicate product code detected: %s", e.Code)
}

// Is checks if the target error is an ErrDuplicateProductCode
func (e *DuplicateProductCodeError) Is(target error) bool {
	return target == ErrDuplicateProductCode
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateProductCodeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_product_code",
		"code":       e.Code,
		"error_code": CodeDuplicateProductCode,
	}
}

// NewDuplicateProductCodeError creates a new detailed duplicate code error
func NewDuplicateProductCodeError(code string) error {
	return &DuplicateProductCodeError{Code: code}
}

// ProductInUseError provides detailed information about rejected product deletions
type ProductInUseError struct {
	ProductID uint64
}

// Error implements the error interface
func (e *ProductInUseError) Error() string {
	return fmt.Sprintf("product %d cannot be deleted: referenced by transaction items", e.ProductID)
}

// Is checks if the target error is an ErrProductInUse
func (e *ProductInUseError) Is(target error) bool {
	return target == ErrProductInUse
}

// LogFields returns a map of fields for structured logging
func (e *ProductInUseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "product_in_use",
		"product_id": e.ProductID,
		"error_code": CodeProductInUse,
	}
}

// NewProductInUseError creates a new detailed restrict-delete error
func NewProductInUseError(productID uint64) error {
	return &ProductInUseError{ProductID: productID}
}

// IsDuplicateProductCodeError checks if the error is a duplicate code error
func IsDuplicateProductCodeError(err error) bool {
	return errors.Is(err, ErrDuplicateProductCode)
}

// IsProductInUseError checks if the error is a restrict-delete violation
func IsProductInUseError(err error) bool {
	return errors.Is(err, ErrProductInUse)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
