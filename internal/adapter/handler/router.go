package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/interview-coach/internal/adapter/dto/common"
	"github.com/johnquangdev/interview-coach/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	authHandler      *Auth
	interviewHandler *Interview
	archiveHandler   *Archive
	authMiddleware   echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, authHandler *Auth, interviewHandler *Interview, authMiddleware echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:              cfg,
		authHandler:      authHandler,
		interviewHandler: interviewHandler,
		authMiddleware:   authMiddleware,
	}
}

// WithArchive enables GET /archives
func (rt *Router) WithArchive(h *Archive) *Router {
	rt.archiveHandler = h
	return rt
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public auth routes
	e.POST("/login", rt.authHandler.Login)
	e.POST("/signup", rt.authHandler.Signup)

	// Routes below require a bearer token
	e.POST("/logout", rt.authHandler.Logout, rt.authMiddleware)
	e.POST("/chat", rt.interviewHandler.Chat, rt.authMiddleware)
	e.GET("/past-interviews", rt.interviewHandler.PastInterviews, rt.authMiddleware)
	if rt.archiveHandler != nil {
		e.GET("/archives", rt.archiveHandler.List, rt.authMiddleware)
	}
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{Status: "ok"}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
		resp.Store = rt.cfg.Database.Driver
	}
	return c.JSON(http.StatusOK, resp)
}
