package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/zakinadhif/cashierku/internal/domain/error"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsDuplicateProductCodeError(err),
		domainerr.IsProductInUseError(err):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrUnsupportedOperation):
		return http.StatusNotImplemented
	case errors.Is(err, domainerr.ErrInvalidProductCode),
		errors.Is(err, domainerr.ErrNegativePrice),
		errors.Is(err, domainerr.ErrInvalidQuantity),
		errors.Is(err, domainerr.ErrEmptyTransaction),
		errors.Is(err, domainerr.ErrTooManyItems),
		errors.Is(err, domainerr.ErrInvalidProductID),
		errors.Is(err, domainerr.ErrInvalidTransactionID),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageForError returns the client-facing message for a domain error.
// Internal failures are masked; everything else reads fine as-is.
func messageForError(err error) string {
	if statusForError(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
