package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
	"github.com/johnquangdev/interview-coach/pkg/jwt"
)

// defaultRevocationTTL applies when a token's exp claim cannot be read
const defaultRevocationTTL = time.Hour

// Provider is the hosted identity service
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*entities.Session, error)
	SignUp(ctx context.Context, email, password string) (*entities.SignupResult, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*entities.Identity, error)
}

// TokenDenylist remembers tokens revoked by logout
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}

// Service handles sign-in, sign-up, logout and per-request token checks
type Service struct {
	provider  Provider
	denylist  TokenDenylist
	inspector *jwt.Inspector
	logger    *zap.Logger
}

// NewService creates a new auth service. denylist may be nil.
func NewService(provider Provider, denylist TokenDenylist, inspector *jwt.Inspector, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if inspector == nil {
		inspector = jwt.NewInspector()
	}
	return &Service{
		provider:  provider,
		denylist:  denylist,
		inspector: inspector,
		logger:    logger,
	}
}

// Login exchanges credentials for a session
func (s *Service) Login(ctx context.Context, email, password string) (*entities.Session, error) {
	email = strings.TrimSpace(email)
	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		s.logger.Info("sign in rejected", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidCredentials, err)
	}
	return session, nil
}

// Signup registers a new user
func (s *Service) Signup(ctx context.Context, email, password string) (*entities.SignupResult, error) {
	email = strings.TrimSpace(email)
	res, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		s.logger.Info("sign up rejected", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrSignupFailed, err)
	}
	s.logger.Info("user signed up", zap.String("user_id", res.UserID.String()))
	return res, nil
}

// Authenticate resolves the token to an identity.
// Revoked tokens are rejected without asking the provider.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*entities.Identity, error) {
	if accessToken == "" {
		return nil, usecaseErrors.ErrMissingToken
	}

	if s.denylist != nil {
		hash, err := jwt.HashToken(accessToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidSession, err)
		}
		revoked, err := s.denylist.IsRevoked(ctx, hash)
		if err != nil {
			s.logger.Warn("token denylist unavailable", zap.Error(err))
		}
		if revoked {
			return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidSession, usecaseErrors.ErrTokenRevoked)
		}
	}

	identity, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidSession, err)
	}
	return identity, nil
}

// Logout ends the session at the provider and revokes the token locally
func (s *Service) Logout(ctx context.Context, accessToken string) error {
	if err := s.provider.SignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("%w: %v", usecaseErrors.ErrLogoutFailed, err)
	}

	if s.denylist == nil {
		return nil
	}
	hash, err := jwt.HashToken(accessToken)
	if err != nil {
		return nil
	}
	ttl := s.inspector.RemainingLifetime(accessToken, defaultRevocationTTL)
	if err := s.denylist.Revoke(ctx, hash, ttl); err != nil {
		s.logger.Warn("failed to revoke token locally", zap.Error(err))
	}
	return nil
}
