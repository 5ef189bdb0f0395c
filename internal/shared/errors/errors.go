// Package errors carries the application error taxonomy. Every error that
// reaches the HTTP layer is expected to be an *AppError; anything else is
// reported as an opaque internal error.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeBadRequest   ErrorType = "bad_request"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeAccessDenied ErrorType = "access_denied"
	ErrorTypeRateLimited  ErrorType = "rate_limited"
	ErrorTypeInternal     ErrorType = "internal_error"
)

var statusCodes = map[ErrorType]int{
	ErrorTypeValidation:   http.StatusBadRequest,
	ErrorTypeBadRequest:   http.StatusBadRequest,
	ErrorTypeNotFound:     http.StatusNotFound,
	ErrorTypeConflict:     http.StatusConflict,
	ErrorTypeForbidden:    http.StatusForbidden,
	ErrorTypeAccessDenied: http.StatusForbidden,
	ErrorTypeRateLimited:  http.StatusTooManyRequests,
	ErrorTypeInternal:     http.StatusInternalServerError,
}

// AppError is an error with a stable type and the HTTP status it maps to.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, message string, details []string) *AppError {
	return &AppError{
		Type:    t,
		Message: message,
		Code:    statusCodes[t],
		Details: strings.Join(details, "; "),
	}
}

func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, message, details)
}

func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, message, details)
}

func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, message, details)
}

// NewForbiddenError rejects an operation the session's role may not use.
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, message, details)
}

// NewAccessDeniedError is terminal for the session: its token names no
// client. details carries the path the caller should go back to.
func NewAccessDeniedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAccessDenied, message, details)
}

func NewRateLimitedError(message string) *AppError {
	return newAppError(ErrorTypeRateLimited, message, nil)
}

func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, message, details)
}

// GetAppError finds an *AppError in err's chain.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// IsType reports whether err's chain holds an AppError of type t.
func IsType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsValidationError(err error) bool   { return IsType(err, ErrorTypeValidation) }
func IsNotFoundError(err error) bool     { return IsType(err, ErrorTypeNotFound) }
func IsConflictError(err error) bool     { return IsType(err, ErrorTypeConflict) }
func IsForbiddenError(err error) bool    { return IsType(err, ErrorTypeForbidden) }
func IsAccessDeniedError(err error) bool { return IsType(err, ErrorTypeAccessDenied) }
func IsInternalError(err error) bool     { return IsType(err, ErrorTypeInternal) }
