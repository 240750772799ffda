package jwt

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Inspector reads access tokens issued by the auth provider.
// Tokens are validated by the provider itself, so claims are read without signature checks.
type Inspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewInspector creates a new token inspector
func NewInspector() *Inspector {
	return &Inspector{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// Parse decodes the token's claims without verifying its signature
func (i *Inspector) Parse(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is empty")
	}
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

// ExpiresAt returns the token's exp claim
func (i *Inspector) ExpiresAt(tokenString string) (time.Time, error) {
	claims, err := i.Parse(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("token has no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}

// RemainingLifetime returns how long the token stays valid, falling back when exp cannot be read.
// An already expired token yields zero.
func (i *Inspector) RemainingLifetime(tokenString string, fallback time.Duration) time.Duration {
	exp, err := i.ExpiresAt(tokenString)
	if err != nil {
		return fallback
	}
	remaining := exp.Sub(i.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// HashToken returns the SHA-256 hex digest of the provided token string.
// Revoked tokens are stored by digest only.
func HashToken(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("token is empty")
	}
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:]), nil
}
