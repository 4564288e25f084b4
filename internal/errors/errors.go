package errors

import (
	"errors"
	"net/http"
	"strings"
)

// Sentinel error texts are part of the public API contract and are returned
// verbatim in response bodies.
var (
	// ErrUserExists is returned when signup hits a duplicate email or username.
	ErrUserExists = errors.New("User with this email or username already exists")
	// ErrInvalidCredentials is returned for unknown email or wrong password,
	// deliberately indistinguishable to avoid account enumeration.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrExternalLoginOnly is returned when the account has no password hash.
	ErrExternalLoginOnly = errors.New("Please login using Google OAuth")
	// ErrExpenseNotFound covers both a missing record and a record owned by
	// another user; the two cases must stay indistinguishable to the caller.
	ErrExpenseNotFound = errors.New("Expense not found or unauthorized")
	// ErrUserNotFound is returned when the acting user no longer exists.
	ErrUserNotFound = errors.New("User not found")
)

// ValidationError aggregates every violated field of one request.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ", ")
}

// NewValidationError builds a ValidationError from field-level messages.
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

// ErrorResponse represents a standardized error response body. Error carries
// the underlying cause and is only populated in development mode.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return NewHTTPError(http.StatusBadRequest, ve.Error(), "VALIDATION_FAILED")
	}
	switch {
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_EXISTS")
	case errors.Is(err, ErrExternalLoginOnly):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EXTERNAL_LOGIN_ONLY")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrExpenseNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EXPENSE_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Server error", "INTERNAL_ERROR")
	}
}
