package errors

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeNotCreated ErrorType = "NOT_CREATED"
	ErrorTypeNotPatched ErrorType = "NOT_PATCHED"
	ErrorTypeNotDeleted ErrorType = "NOT_DELETED"
	ErrorTypeInternal   ErrorType = "INTERNAL"
)

// Titles rendered to API clients for the errors that are not raised with their own title.
const (
	ValidationTitle = "Parâmetros incorretos na requisição"
	UnexpectedTitle = "Ocorreu um erro inesperado"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType
	Title      string
	Message    string
	Errors     []string // validation messages, one per violation
	Cause      error
	StackTrace string
	HTTPStatus int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// captureStackTrace captures the current stack trace
func captureStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var stack strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&stack, "%s:%d %s\n", frame.File, frame.Line, frame.Function)
		if !more {
			break
		}
	}
	return stack.String()
}

func newAppError(errType ErrorType, status int, title, message string) *AppError {
	return &AppError{
		Type:       errType,
		Title:      title,
		Message:    message,
		HTTPStatus: status,
		StackTrace: captureStackTrace(),
	}
}

// NewValidationError creates a validation error carrying every violation message.
func NewValidationError(messages ...string) *AppError {
	err := newAppError(ErrorTypeValidation, http.StatusBadRequest, ValidationTitle, strings.Join(messages, "; "))
	err.Errors = messages
	return err
}

// NewNotFoundError creates a not found error
func NewNotFoundError(title, message string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, title, message)
}

// NewNotCreatedError is raised when a resource could not be persisted.
func NewNotCreatedError(title, message string) *AppError {
	return newAppError(ErrorTypeNotCreated, http.StatusInternalServerError, title, message)
}

// NewNotPatchedError is raised when a partial update could not be applied.
func NewNotPatchedError(title, message string) *AppError {
	return newAppError(ErrorTypeNotPatched, http.StatusInternalServerError, title, message)
}

// NewNotDeletedError is raised when a resource could not be removed.
func NewNotDeletedError(title, message string) *AppError {
	return newAppError(ErrorTypeNotDeleted, http.StatusInternalServerError, title, message)
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, UnexpectedTitle, message)
}

// Helper functions

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}
