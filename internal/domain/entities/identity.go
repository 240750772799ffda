package entities

import "github.com/google/uuid"

// Identity is the user resolved from an access token
type Identity struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
}

// Session is the result of a successful sign-in
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	UserID       uuid.UUID
}

// SignupResult describes a newly registered user
type SignupResult struct {
	UserID           uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	ConfirmationSent bool      `json:"confirmation_sent"`
}
