package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/subvault/subvault-api/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeTooManyRequests  ErrorCode = "too_many_requests"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// ErrorResponse is the JSON envelope of an APIError
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// Response wraps the error in its JSON envelope
func (e *APIError) Response() ErrorResponse {
	return ErrorResponse{Error: e}
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// StatusCode returns the HTTP status for the error code
func (e *APIError) StatusCode() int {
	switch e.Code {
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewTooManyRequestsError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeTooManyRequests,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromDomainError maps the domain sentinel errors to API errors. It returns
// nil for errors that are not part of the domain vocabulary.
func FromDomainError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError("Not found")
	case errors.Is(err, domain.ErrMissingFields):
		return NewBadRequestError("Missing required fields")
	case errors.Is(err, domain.ErrMalformedMessage):
		return NewBadRequestError("Malformed sign-in message")
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(err.Error())
	case errors.Is(err, domain.ErrChainMismatch):
		return NewValidationError("Destination vault is on a different chain")
	case errors.Is(err, domain.ErrInvalidNonce):
		return NewUnauthorizedError("Invalid or expired nonce")
	case errors.Is(err, domain.ErrInvalidSignature):
		return NewUnauthorizedError("Invalid signature")
	case errors.Is(err, domain.ErrOwnerMismatch):
		return NewForbiddenError("Owner mismatch")
	case errors.Is(err, domain.ErrHandleConflict):
		return NewConflictError("Handle is not available")
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		return NewConflictError("Invalid status transition")
	case errors.Is(err, domain.ErrPaymentClosed):
		return NewConflictError("Payment is completed or cancelled")
	case errors.Is(err, domain.ErrDuplicateExecution):
		return NewConflictError("Transaction already recorded")
	}
	return nil
}
