package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/johnquangdev/interview-coach/errors"
	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// Echo context keys set by EchoAuth
const (
	UserIDKey      = "user_id"
	IdentityKey    = "identity"
	AccessTokenKey = "access_token"
)

// Authenticator resolves a bearer token to the identity behind it
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*entities.Identity, error)
}

// EchoAuth returns an Echo middleware that validates the bearer token and sets
// "user_id" (uuid.UUID), "identity" (*entities.Identity) and "access_token" into Echo context
func EchoAuth(authenticator Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return apperrors.ErrMissingAuthHeader()
			}

			token := ExtractToken(authHeader)
			identity, err := authenticator.Authenticate(c.Request().Context(), token)
			if err != nil {
				return apperrors.ErrInvalidSession(err)
			}

			c.Set(IdentityKey, identity)
			c.Set(UserIDKey, identity.UserID)
			c.Set(AccessTokenKey, token)

			return next(c)
		}
	}
}

// ExtractToken returns what follows the first space of the header, or the whole header when it has none
func ExtractToken(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(authHeader)
}
