// Package errors provides typed API errors shared by the server and client.
package errors

import "net/http"

// APIError represents a structured API error with an HTTP status, a stable
// machine-readable code, and a human-readable message.
type APIError struct {
	HTTPStatus int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Predefined API errors.
var (
	ErrBadRequest        = &APIError{HTTPStatus: http.StatusBadRequest, Code: "BAD_REQUEST", Message: "Invalid request parameters"}
	ErrInvalidJSON       = &APIError{HTTPStatus: http.StatusBadRequest, Code: "INVALID_JSON", Message: "Invalid JSON payload"}
	ErrValidation        = &APIError{HTTPStatus: http.StatusBadRequest, Code: "VALIDATION_FAILED", Message: "Request validation failed"}
	ErrDuplicateResource = &APIError{HTTPStatus: http.StatusConflict, Code: "DUPLICATE_RESOURCE", Message: "Resource already exists"}
	ErrResourceNotFound  = &APIError{HTTPStatus: http.StatusNotFound, Code: "NOT_FOUND", Message: "Resource not found"}
	ErrInternalServer    = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: "Internal server error"}
	ErrDatabase          = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "DATABASE_ERROR", Message: "Database operation failed"}
	ErrNetwork           = &APIError{HTTPStatus: http.StatusBadGateway, Code: "NETWORK_ERROR", Message: "Request failed to reach the server"}
)

// NewAPIError creates a copy of a predefined error with a custom message.
func NewAPIError(base *APIError, message string) *APIError {
	return &APIError{
		HTTPStatus: base.HTTPStatus,
		Code:       base.Code,
		Message:    message,
	}
}

// NewValidationError creates a validation error with a custom message.
func NewValidationError(message string) *APIError {
	return NewAPIError(ErrValidation, message)
}

// NewNotFoundError creates a not-found error with a custom message.
func NewNotFoundError(message string) *APIError {
	return NewAPIError(ErrResourceNotFound, message)
}

// NewDuplicateError creates a duplicate-resource error with a custom message.
func NewDuplicateError(message string) *APIError {
	return NewAPIError(ErrDuplicateResource, message)
}

// FromHTTPStatus maps an HTTP status code and server-provided detail to an
// APIError. Used by the client when decoding error envelopes.
func FromHTTPStatus(status int, detail string) *APIError {
	var base *APIError
	switch status {
	case http.StatusBadRequest:
		base = ErrValidation
	case http.StatusNotFound:
		base = ErrResourceNotFound
	case http.StatusConflict:
		base = ErrDuplicateResource
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		base = ErrNetwork
	default:
		base = ErrInternalServer
	}
	if detail == "" {
		detail = http.StatusText(status)
	}
	return &APIError{
		HTTPStatus: status,
		Code:       base.Code,
		Message:    detail,
	}
}
