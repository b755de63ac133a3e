package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error categories. Lower layers wrap these so callers can classify
// failures with errors.Is without depending on the layer that raised them.
var (
	// ErrInvalidArgument marks malformed or out-of-range input. Caller-fixable.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState marks an operation attempted from a state that does not
	// permit it. Never retried automatically.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotFound marks an identity that does not resolve.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict marks a uniqueness or optimistic-concurrency violation.
	// Callers may retry with fresh state.
	ErrConflict = errors.New("resource conflict")

	// ErrStorageUnavailable marks a transient storage transport failure.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrPublishUnavailable marks a transient message broker failure.
	ErrPublishUnavailable = errors.New("publish unavailable")
)

// AppError represents an application error with HTTP status and error code.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrorResponse represents the JSON error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToResponse converts an AppError to ErrorResponse.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    e.Code,
			Message: e.Message,
		},
	}
}

// InvalidArgument creates a caller-fixable validation error.
func InvalidArgument(message string) *AppError {
	return &AppError{
		Code:       "INVALID_ARGUMENT",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Err:        ErrInvalidArgument,
	}
}

// InvalidState creates an illegal-transition error.
func InvalidState(message string) *AppError {
	return &AppError{
		Code:       "INVALID_STATE",
		Message:    message,
		StatusCode: http.StatusConflict,
		Err:        ErrInvalidState,
	}
}

// NotFound creates a not found error.
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
		Err:        ErrNotFound,
	}
}

// Conflict creates a conflict error.
func Conflict(message string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    message,
		StatusCode: http.StatusConflict,
		Err:        ErrConflict,
	}
}

// Internal creates an internal error.
func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// GetStatusCode returns the appropriate HTTP status code for an error.
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrStorageUnavailable), errors.Is(err, ErrPublishUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
