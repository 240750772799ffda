package auth

// LoginResponse represents the sign-in response
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	UserID       string `json:"user_id"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}

// UserResponse represents user information in responses
type UserResponse struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	ConfirmationSent bool   `json:"confirmation_sent"`
}

// SignupResponse represents the registration response
type SignupResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// MessageResponse carries a plain status message
type MessageResponse struct {
	Message string `json:"message"`
}
