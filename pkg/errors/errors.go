package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeAuthRequired indicates no access token was available
	ErrorTypeAuthRequired ErrorType = "AUTH_REQUIRED"

	// ErrorTypeTransport indicates the request never reached the service
	ErrorTypeTransport ErrorType = "TRANSPORT"

	// ErrorTypeServer indicates a non-success or malformed response
	ErrorTypeServer ErrorType = "SERVER"

	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "VALIDATION"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Status  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	prefix := string(e.Type)
	if e.Status != 0 {
		prefix = fmt.Sprintf("%s(%d)", e.Type, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAuthRequiredError creates an error for a missing access token
func NewAuthRequiredError() *AppError {
	return &AppError{
		Type:    ErrorTypeAuthRequired,
		Message: "authentication required",
	}
}

// NewTransportError creates an error for a request that could not reach the service
func NewTransportError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeTransport,
		Message: message,
		Err:     err,
	}
}

// NewServerError creates an error for a non-success response
func NewServerError(status int, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeServer,
		Status:  status,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType reports whether err carries an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	appErr, ok := As(err)
	return ok && appErr.Type == t
}

func IsAuthRequired(err error) bool { return IsType(err, ErrorTypeAuthRequired) }

func IsTransport(err error) bool { return IsType(err, ErrorTypeTransport) }

func IsServer(err error) bool { return IsType(err, ErrorTypeServer) }

func IsValidation(err error) bool { return IsType(err, ErrorTypeValidation) }
