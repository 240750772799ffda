package errors

import (
	"fmt"
	"net/http"
)

// AppError is the error type surfaced to HTTP callers
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrDeadlineExceeded(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusGatewayTimeout,
		Code:     ErrorCode_DEADLINE_EXCEEDED,
		Message:  "Request took too long to complete",
	}
}

// Authentication Errors
func ErrMissingAuthHeader() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_MISSING_HEADER,
		Message:  "Missing Authorization Header",
	}
}

func ErrInvalidSession(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_INVALID_SESSION,
		Message:  "Invalid session",
	}
}

// ErrInvalidCredentials carries the provider's message so the caller sees why sign-in failed
func ErrInvalidCredentials(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_AUTH_INVALID_CREDENTIALS,
		Message:  causeMessage(err, "Invalid email or password"),
	}
}

func ErrSignupFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_AUTH_SIGNUP_FAILED,
		Message:  causeMessage(err, "Signup failed"),
	}
}

func ErrLogoutFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_AUTH_LOGOUT_FAILED,
		Message:  causeMessage(err, "Logout failed"),
	}
}

// Interview pipeline Errors
func ErrTranscriptUnavailable(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_TRANSCRIPT_UNAVAILABLE,
		Message:  "Failed to fetch transcript",
	}
}

func ErrPersistenceFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PERSISTENCE_FAILED,
		Message:  "Failed to save interview",
	}
}

func ErrInterviewListFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERVIEW_LIST_FAILED,
		Message:  "Failed to load past interviews",
	}
}

// Integration Errors
func ErrExternalAPIFailed(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_INTEGRATION_EXTERNAL_API_FAILED,
		Message:  fmt.Sprintf("%s request failed", service),
	}.WithDetail("service", service)
}

func causeMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	return err.Error()
}
