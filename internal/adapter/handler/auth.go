package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/errors"
	authDTO "github.com/johnquangdev/interview-coach/internal/adapter/dto/auth"
	"github.com/johnquangdev/interview-coach/internal/adapter/presenter"
	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	httpmw "github.com/johnquangdev/interview-coach/internal/infrastructure/http/middleware"
)

// AuthService is the auth usecase consumed by the handler
type AuthService interface {
	Login(ctx context.Context, email, password string) (*entities.Session, error)
	Signup(ctx context.Context, email, password string) (*entities.SignupResult, error)
	Logout(ctx context.Context, accessToken string) error
}

// Auth handles authentication HTTP requests
type Auth struct {
	authService AuthService
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService AuthService, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Login signs a user in with email and password
// @Summary      Sign in
// @Description  Exchanges email and password for an access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.LoginRequest    true  "Credentials"
// @Success      200      {object}  auth.LoginResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid credentials"
// @Router       /login [post]
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToLoginResponse(session))
}

// Signup registers a new user
// @Summary      Sign up
// @Description  Registers a user with email and password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      auth.SignupRequest   true  "Credentials"
// @Success      200      {object}  auth.SignupResponse
// @Failure      400      {object}  common.ErrorResponse  "Provider rejected the signup"
// @Router       /signup [post]
func (h *Auth) Signup(c echo.Context) error {
	var req authDTO.SignupRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	res, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSignupResponse(res))
}

// Logout ends the caller's session
// @Summary      Sign out
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  auth.MessageResponse
// @Failure      400  {object}  common.ErrorResponse  "Provider rejected the logout"
// @Failure      401  {object}  common.ErrorResponse  "Missing or invalid session"
// @Router       /logout [post]
func (h *Auth) Logout(c echo.Context) error {
	token, _ := c.Get(httpmw.AccessTokenKey).(string)
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, authDTO.MessageResponse{Message: "Successfully logged out"})
}
