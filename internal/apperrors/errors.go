package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrConfigMissing indicates that the user has no financial config yet.
// The engine cannot run without one; callers should ask the user to complete onboarding.
var ErrConfigMissing = errors.New("financial config not found, complete onboarding first")

// ErrDataUnavailable indicates that the ledger or config store could not be read.
var ErrDataUnavailable = errors.New("financial data unavailable")

// ErrTransactionBlocked indicates that the kill-switch refused a transaction.
var ErrTransactionBlocked = errors.New("transaction blocked by kill-switch")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewUnavailableError wraps a store failure so that errors.Is(err, ErrDataUnavailable) holds.
func NewUnavailableError(message string, err error) *AppError {
	return NewAppError(503, message, errors.Join(ErrDataUnavailable, err))
}

// NewNotFoundError reports a missing resource so that errors.Is(err, ErrNotFound) holds.
func NewNotFoundError(message string) *AppError {
	return NewAppError(404, message, ErrNotFound)
}
