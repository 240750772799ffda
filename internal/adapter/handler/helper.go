package handler

import (
	"context"
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/errors"
	"github.com/johnquangdev/interview-coach/internal/adapter/dto/common"
	usecaseErrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
)

// getRequestID tries to read X-Request-ID from the request or response
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// toAppError maps usecase errors onto their HTTP representation
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	cause := stdErrors.Unwrap(err)
	if cause == nil {
		cause = err
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidPayload(providerCause(err, usecaseErrors.ErrInvalidInput))
	case stdErrors.Is(err, usecaseErrors.ErrMissingToken):
		return errors.ErrMissingAuthHeader()
	case stdErrors.Is(err, usecaseErrors.ErrInvalidSession):
		return errors.ErrInvalidSession(err)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials(providerCause(err, usecaseErrors.ErrInvalidCredentials))
	case stdErrors.Is(err, usecaseErrors.ErrSignupFailed):
		return errors.ErrSignupFailed(providerCause(err, usecaseErrors.ErrSignupFailed))
	case stdErrors.Is(err, usecaseErrors.ErrLogoutFailed):
		return errors.ErrLogoutFailed(providerCause(err, usecaseErrors.ErrLogoutFailed))
	case stdErrors.Is(err, usecaseErrors.ErrTranscriptUnavailable):
		return errors.ErrTranscriptUnavailable(err)
	case stdErrors.Is(err, usecaseErrors.ErrPersistence):
		return errors.ErrPersistenceFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrListInterviews):
		return errors.ErrInterviewListFailed(err)
	case stdErrors.Is(err, context.DeadlineExceeded):
		return errors.ErrDeadlineExceeded(err)
	}
	return errors.ErrInternal(cause)
}

// providerCause strips the sentinel prefix so callers see the provider's own message
func providerCause(err error, sentinel error) error {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return stdErrors.New(msg[len(prefix):])
	}
	return err
}

// HandleSuccess writes data as the JSON body of a 200 response
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Info("http.response.error", fields...)
		}
	}

	body := common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Detail:  appErr.Message,
		Details: appErr.Details,
	}
	// internal causes stay in the logs
	if appErr.Raw != nil && appErr.HTTPCode < http.StatusInternalServerError {
		body.Info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, body)
}

// ErrorHandler returns an echo.HTTPErrorHandler that renders AppErrors and echo errors alike
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if stdErrors.As(err, &he) {
			msg := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok {
				msg = m
			}
			if c.Request().Method == http.MethodHead {
				_ = c.NoContent(he.Code)
				return
			}
			_ = c.JSON(he.Code, common.ErrorResponse{Code: he.Code, Message: msg, Detail: msg})
			return
		}

		_ = HandleError(logger, c, err)
	}
}
