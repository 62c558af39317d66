// Package errs defines the error types the schema layer hands to its
// callers.
//
// Two families exist:
//   - HTTPError with field-level FieldError entries, produced when an
//     inbound payload fails validation. The routing layer serializes these
//     as 4xx responses.
//   - IntegrityError, produced when a response projection finds a persisted
//     record missing a relation it needs. This is corrupted data, not bad
//     input, and is kept distinct so callers don't report it as a client
//     mistake.
package errs

import (
	"net/http"
	"strings"
)

// FieldError is a single validation error attached to one payload field.
// Example:
//
//	{ "field": "password_confirm", "error": "passwords do not match" }
type FieldError struct {
	// Field is the wire name of the field the error relates to.
	Field string `json:"field"`

	// Error is the human-readable message.
	Error string `json:"error"`
}

// HTTPError is the error envelope returned to API clients.
//
// It satisfies the error interface and is designed to be serialized to JSON
// as-is by the routing layer.
type HTTPError struct {
	// Code is a machine-friendly code derived from the HTTP status text,
	// e.g. "BAD_REQUEST".
	Code string `json:"code"`

	// Message is the human-friendly summary.
	Message string `json:"message"`

	// Status is the HTTP status code the caller should respond with.
	Status int `json:"status"`

	// Errors holds per-field validation errors, when the failure is a
	// validation failure. Nil otherwise.
	Errors []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is lets errors.Is match any *HTTPError regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with only Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// fieldErrors carries the full list of violations found in the payload; the
// validation package collects every violation, not just the first.
func NewBadRequestError(message string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusBadRequest),
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  fieldErrors,
	}
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusUnauthorized),
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusForbidden),
		Message: message,
		Status:  http.StatusForbidden,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusNotFound),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 HTTPError. The message is the generic
// status text; internal detail belongs in logs, not in the response body.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusInternalServerError),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// statusCode converts an HTTP status into an UPPER_CASE_WITH_UNDERSCORES
// code, e.g. 400 -> "BAD_REQUEST".
func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
