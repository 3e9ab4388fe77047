// Package apperror provides structured error handling following RFC 7807 Problem Details.
// Errors leaving the HTTP boundary must be AppErrors for consistent API responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"
	CodeTimeout  = "TIMEOUT_ERROR"

	// Input errors (400, 413)
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidDocument = "INVALID_DOCUMENT"
	CodeTypeMismatch    = "TYPE_MISMATCH"
	CodeTooLarge        = "DOCUMENT_TOO_LARGE"

	// Schema violations (422)
	CodeValidation = "VALIDATION_ERROR"

	// Unknown model names (404)
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidClassifier = "INVALID_CLASSIFIER"
	CodeInvalidEnumerator = "INVALID_ENUMERATOR"
)

// AppError is the standard error type of the service.
// It implements error interface and provides structured details for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (issue list, offending literal, ...)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewValidation creates a schema violation error (422)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// NewInvalidInput creates a bad request error for malformed parameters (400)
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidDocument reports a body that cannot be decoded as a TJS document (400).
// The cause text is exposed because it points at the offending markup.
func NewInvalidDocument(err error) *AppError {
	return &AppError{
		Code:       CodeInvalidDocument,
		Message:    "Document could not be decoded",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"error": err.Error()},
		Err:        err,
	}
}

// NewTooLarge creates a payload size error (413)
func NewTooLarge(limit int64) *AppError {
	return &AppError{
		Code:       CodeTooLarge,
		Message:    fmt.Sprintf("Document exceeds %d bytes", limit),
		HTTPStatus: http.StatusRequestEntityTooLarge,
		Details:    map[string]any{"limit": limit},
	}
}

// NewTypeMismatch reports a value of the wrong type for a feature or datatype (400)
func NewTypeMismatch(err error) *AppError {
	return &AppError{
		Code:       CodeTypeMismatch,
		Message:    err.Error(),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInvalidClassifier reports an unknown class or datatype name (404)
func NewInvalidClassifier(err error) *AppError {
	return &AppError{
		Code:       CodeInvalidClassifier,
		Message:    err.Error(),
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

// NewInvalidEnumerator reports a literal outside its enumeration (400)
func NewInvalidEnumerator(err error) *AppError {
	return &AppError{
		Code:       CodeInvalidEnumerator,
		Message:    err.Error(),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// NewTimeout creates a timeout error (504)
func NewTimeout(err error) *AppError {
	return &AppError{
		Code:       CodeTimeout,
		Message:    "Request timed out",
		HTTPStatus: http.StatusGatewayTimeout,
		Err:        err,
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// Mapping converts a domain sentinel into an AppError.
type Mapping struct {
	Target error
	Build  func(err error) *AppError
}

// Translate returns err unchanged when it already carries an AppError,
// the first matching mapping's AppError otherwise, and an internal error
// as the fallback.
func Translate(err error, mappings ...Mapping) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	for _, m := range mappings {
		if errors.Is(err, m.Target) {
			return m.Build(err)
		}
	}
	return NewInternal(err)
}
