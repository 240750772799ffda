package presenter

import (
	authDTO "github.com/johnquangdev/interview-coach/internal/adapter/dto/auth"
	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// ToLoginResponse converts a session to the sign-in response
func ToLoginResponse(s *entities.Session) *authDTO.LoginResponse {
	if s == nil {
		return nil
	}
	return &authDTO.LoginResponse{
		AccessToken:  s.AccessToken,
		UserID:       s.UserID.String(),
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
		TokenType:    "bearer",
	}
}

// ToSignupResponse converts a signup result to the registration response
func ToSignupResponse(r *entities.SignupResult) *authDTO.SignupResponse {
	resp := &authDTO.SignupResponse{Message: "Success"}
	if r != nil {
		resp.User = &authDTO.UserResponse{
			ID:               r.UserID.String(),
			Email:            r.Email,
			ConfirmationSent: r.ConfirmationSent,
		}
	}
	return resp
}
