// Package error defines domain-specific errors for the Money Keeper application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDefaultCategoryProtected is returned when attempting to delete a default category.
	ErrDefaultCategoryProtected = errors.New("cannot delete a default category")

	// ErrInvalidCategoryKind is returned when the category kind is invalid.
	ErrInvalidCategoryKind = errors.New("invalid category kind")

	// ErrMissingCategoryFields is returned when required category fields are absent.
	ErrMissingCategoryFields = errors.New("missing required category fields")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is the class and YYYY the specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryKind   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010003"

	// Business rule errors (02XXXX)
	ErrCodeDefaultCategoryProtected CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
