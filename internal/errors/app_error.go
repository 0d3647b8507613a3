package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeBadRequest           = "BAD_REQUEST"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeInternal             = "INTERNAL_ERROR"
	ErrCodeTransport            = "TRANSPORT_ERROR"
	ErrCodeServerRejection      = "SERVER_REJECTION"
	ErrCodeSubmissionInProgress = "SUBMISSION_IN_PROGRESS"
	ErrCodeSubmissionAbandoned  = "SUBMISSION_ABANDONED"
	ErrCodeCacheError           = "CACHE_ERROR"
	ErrCodeTooManyRequests      = "TOO_MANY_REQUESTS"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

// TransportError means the backend could not be reached or did not answer in time.
func TransportError(message string) *AppError {
	return NewAppError(ErrCodeTransport, message, http.StatusBadGateway)
}

// ServerRejectionError carries the backend's own status code when it is a
// client error; server-side failures surface as a bad gateway.
func ServerRejectionError(message string, backendStatus int) *AppError {
	status := http.StatusBadGateway
	if backendStatus >= 400 && backendStatus < 500 {
		status = backendStatus
	}

	return NewAppError(ErrCodeServerRejection, message, status)
}

func SubmissionInProgressError(message string) *AppError {
	return NewAppError(ErrCodeSubmissionInProgress, message, http.StatusConflict)
}

func SubmissionAbandonedError(message string) *AppError {
	return NewAppError(ErrCodeSubmissionAbandoned, message, http.StatusRequestTimeout)
}

func CacheError(message string) *AppError {
	return NewAppError(ErrCodeCacheError, message, http.StatusInternalServerError)
}

func TooManyRequestsError(message string) *AppError {
	return NewAppError(ErrCodeTooManyRequests, message, http.StatusTooManyRequests)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)

	return ok && appErr.Code == code
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
