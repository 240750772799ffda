package supabase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	supa "github.com/supabase-community/supabase-go"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// AuthProvider signs users in and resolves tokens through Supabase Auth
type AuthProvider struct {
	client gotrue.Client
}

// NewClient creates a Supabase client for the project at url
func NewClient(url, key string) (*supa.Client, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize supabase client: %w", err)
	}
	return client, nil
}

// NewAuthProvider wraps the auth client of a Supabase project
func NewAuthProvider(client gotrue.Client) *AuthProvider {
	return &AuthProvider{client: client}
}

// SignIn exchanges email and password for a session
func (p *AuthProvider) SignIn(ctx context.Context, email, password string) (*entities.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := p.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, errors.New("no session returned")
	}
	return &entities.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		UserID:       resp.User.ID,
	}, nil
}

// SignUp registers a new email and password user
func (p *AuthProvider) SignUp(ctx context.Context, email, password string) (*entities.SignupResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := p.client.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	userID := resp.User.ID
	if userID == uuid.Nil {
		// autoconfirm projects answer with a session
		userID = resp.Session.User.ID
	}
	return &entities.SignupResult{
		UserID:           userID,
		Email:            email,
		ConfirmationSent: resp.Session.AccessToken == "",
	}, nil
}

// SignOut revokes the session behind accessToken
func (p *AuthProvider) SignOut(ctx context.Context, accessToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.client.WithToken(accessToken).Logout()
}

// GetUser resolves accessToken to the user it was issued for
func (p *AuthProvider) GetUser(ctx context.Context, accessToken string) (*entities.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := p.client.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, err
	}
	if resp.ID == uuid.Nil {
		return nil, errors.New("token resolved to no user")
	}
	return &entities.Identity{
		UserID: resp.ID,
		Email:  resp.Email,
	}, nil
}
