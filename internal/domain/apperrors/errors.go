package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel error categories, matchable with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("resource conflict")
	ErrNotFound   = errors.New("resource not found")
	ErrInternal   = errors.New("internal error")
)

// AppError is an error with an HTTP status and a client-facing message.
type AppError struct {
	Err        error  `json:"-"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation flags a missing or malformed input field.
func Validation(message string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// Conflict flags a duplicate create.
func Conflict(message string) *AppError {
	return &AppError{
		Err:        ErrConflict,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

// NotFound flags an absent update or delete target.
func NotFound(resource string) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

// Internal wraps an unexpected failure, typically from the database layer.
func Internal(message string, cause error) *AppError {
	return &AppError{
		Err:        errors.Join(ErrInternal, cause),
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// StatusOf extracts the HTTP status carried by err, defaulting to 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
