// Package error defines domain-specific errors for the Money Keeper application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrEmailAlreadyRegistered is returned when registering with an email that is in use.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned when email/password verification fails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user account does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is the class and YYYY the specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmailAlreadyRegistered AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidCredentials     AuthErrorCode = "AUTH-010002"
	ErrCodeUserNotFound           AuthErrorCode = "AUTH-010003"

	// Throttling errors (09XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-090001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
