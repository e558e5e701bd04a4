package errors

import (
	"net/http"
	"strings"
)

// FieldError reports a single invalid input field and the reason it failed.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries per-field failures so callers can correct each
// input individually instead of guessing from a generic message.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a validation error from one or more field failures.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	reasons := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		reasons = append(reasons, f.Field+": "+f.Reason)
	}

	return "validation failed: " + strings.Join(reasons, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Invalid input"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}

// Fields returns the individual field failures.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}
