// Package errors defines the application errors surfaced to clients.
package errors

import (
	"net/http"

	"weev/internal/errors"
)

// Kind classifies an application error independently of the transport.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindAuthorization Kind = "authorization"
	KindInternal      Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors sharing the same business code, so WithDetails copies still match
// the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Activation workflow
	ErrInvalidActivationCode = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_CODE",
		"invalid code",
		"",
	)

	ErrAlreadyActivated = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"ALREADY_ACTIVATED",
		"already activated",
		"",
	)

	ErrActivationCodeRequired = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"ACTIVATION_CODE_REQUIRED",
		"activation code required",
		"",
	)

	ErrActivationCodeTaken = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"ACTIVATION_CODE_TAKEN",
		"activation code already exists",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"invalid QR code",
		"",
	)

	// Reward grant lifecycle
	ErrRewardGrantNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"REWARD_NOT_FOUND",
		"reward not found",
		"",
	)

	ErrRewardNotAvailable = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"REWARD_NOT_AVAILABLE",
		"not available",
		"",
	)

	ErrRewardExpired = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"REWARD_EXPIRED",
		"expired",
		"",
	)

	ErrInvalidGrantState = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_STATE_FILTER",
		"estado must be one of available, claimed, expired",
		"",
	)

	// Catalog administration
	ErrNoBrand = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"NO_BRAND",
		"no brand associated with this account",
		"",
	)

	ErrProductNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrRewardTemplateNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"REWARD_TEMPLATE_NOT_FOUND",
		"reward template not found",
		"",
	)

	ErrInvalidRewardType = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_REWARD_TYPE",
		"reward type must be one of points, discount, content, free_product",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"email already registered",
		"",
	)

	ErrUserInactive = NewBaseError(
		KindAuthorization,
		http.StatusUnauthorized,
		"USER_INACTIVE",
		"account disabled",
		"",
	)

	ErrInvalidRole = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_ROLE",
		"invalid user type",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		KindAuthorization,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid credentials",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		KindAuthorization,
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"not authenticated",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"password does not meet strength requirements",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		KindAuthorization,
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
