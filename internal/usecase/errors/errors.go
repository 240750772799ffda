package errors

import "errors"

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Auth errors
var (
	ErrMissingToken       = errors.New("missing access token")
	ErrInvalidSession     = errors.New("invalid session")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSignupFailed       = errors.New("signup failed")
	ErrLogoutFailed       = errors.New("logout failed")
)

// Interview pipeline errors
var (
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	ErrPersistence           = errors.New("failed to persist interview")
	ErrListInterviews        = errors.New("failed to list interviews")
)
