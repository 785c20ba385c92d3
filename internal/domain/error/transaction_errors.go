// Package error defines domain-specific errors for the Money Keeper application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionKind is returned when the transaction kind is invalid.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrMissingTransactionFields is returned when required transaction fields are absent.
	ErrMissingTransactionFields = errors.New("missing required transaction fields")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category does not exist.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrCategoryNotVisibleToUser is returned when the referenced category is
	// owned by a different user.
	ErrCategoryNotVisibleToUser = errors.New("category not visible to user")

	// ErrSuggestionUnavailable is returned when the AI suggestion service is not configured.
	ErrSuggestionUnavailable = errors.New("category suggestion service unavailable")

	// ErrNoCategorySuggestion is returned when no visible category matches the note.
	ErrNoCategorySuggestion = errors.New("no matching category found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is the class and YYYY the specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionKind   TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010003"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeTxnCategoryNotVisible    TransactionErrorCode = "TXN-010005"

	// Suggestion errors (02XXXX)
	ErrCodeSuggestionUnavailable TransactionErrorCode = "TXN-020001"
	ErrCodeNoCategorySuggestion  TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
