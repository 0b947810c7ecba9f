package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies failures surfaced to the browser as notices
type ErrorType string

const (
	// ErrorTypeNetwork indicates the gateway could not be reached
	ErrorTypeNetwork ErrorType = "NETWORK_FAILURE"

	// ErrorTypeServerRejected indicates a non-2xx status or a missing success marker
	ErrorTypeServerRejected ErrorType = "SERVER_REJECTED"

	// ErrorTypeParse indicates a payload that could not be decoded
	ErrorTypeParse ErrorType = "PARSE_FAILURE"

	// ErrorTypeUnauthorized indicates an action that needs a session was attempted without one
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"

	// ErrorTypeValidation indicates invalid user input
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound indicates a missing resource
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps a transport failure
func NewNetworkError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeNetwork, Message: message, Err: err}
}

// NewServerRejectedError reports a response that did not carry the expected success marker
func NewServerRejectedError(message string) *AppError {
	return &AppError{Type: ErrorTypeServerRejected, Message: message}
}

// NewParseError wraps a decoding failure
func NewParseError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeParse, Message: message, Err: err}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Type: ErrorTypeUnauthorized, Message: message}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// TypeOf returns the ErrorType carried anywhere in err's chain, or "" if none
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsType reports whether err carries the given ErrorType
func IsType(err error, t ErrorType) bool {
	return TypeOf(err) == t
}

// HTTPStatus maps an error to the status code the BFF answers with
func HTTPStatus(err error) int {
	switch TypeOf(err) {
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeNetwork, ErrorTypeServerRejected, ErrorTypeParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
