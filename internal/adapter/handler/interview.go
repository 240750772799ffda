package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/errors"
	interviewDTO "github.com/johnquangdev/interview-coach/internal/adapter/dto/interview"
	"github.com/johnquangdev/interview-coach/internal/adapter/presenter"
	httpmw "github.com/johnquangdev/interview-coach/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/interview-coach/internal/usecase/interview"
)

// Interview handles interview feedback requests
type Interview struct {
	svc    interview.Service
	logger *zap.Logger
}

// NewInterview creates a new interview handler
func NewInterview(svc interview.Service, logger *zap.Logger) *Interview {
	return &Interview{svc: svc, logger: logger}
}

// Chat fetches the transcript of a finished interview, reviews it and stores the result
// @Summary      Submit interview for feedback
// @Description  Waits for the conversation to finish, generates feedback and a score, and saves the record
// @Tags         Interviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      interview.ChatRequest        true  "Interview context"
// @Success      200      {object}  interview.InterviewResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid payload"
// @Failure      401      {object}  common.ErrorResponse  "Missing or invalid session"
// @Failure      500      {object}  common.ErrorResponse  "Transcript or storage failure"
// @Router       /chat [post]
func (h *Interview) Chat(c echo.Context) error {
	userID, ok := c.Get(httpmw.UserIDKey).(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, errors.ErrMissingAuthHeader())
	}

	var req interviewDTO.ChatRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	rec, err := h.svc.SubmitInterview(c.Request().Context(), userID, presenter.ToInterviewContext(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToInterviewResponse(rec))
}

// PastInterviews lists the caller's saved interviews, newest first
// @Summary      List past interviews
// @Tags         Interviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   interview.InterviewResponse
// @Failure      401  {object}  common.ErrorResponse  "Missing or invalid session"
// @Failure      500  {object}  common.ErrorResponse  "Store error"
// @Router       /past-interviews [get]
func (h *Interview) PastInterviews(c echo.Context) error {
	userID, ok := c.Get(httpmw.UserIDKey).(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, errors.ErrMissingAuthHeader())
	}

	list, err := h.svc.ListInterviews(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToInterviewListResponse(list))
}
