package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the claims carried by a hosted-auth access token
type Claims struct {
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	jwt.RegisteredClaims
}
