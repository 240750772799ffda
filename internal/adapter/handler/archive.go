package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/errors"
	interviewDTO "github.com/johnquangdev/interview-coach/internal/adapter/dto/interview"
	httpmw "github.com/johnquangdev/interview-coach/internal/infrastructure/http/middleware"
)

// ArchiveLister lists archived transcript keys of a user
type ArchiveLister interface {
	ListArchives(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// Archive serves the caller's archived transcripts
type Archive struct {
	index  ArchiveLister
	logger *zap.Logger
}

// NewArchive creates a new archive handler
func NewArchive(index ArchiveLister, logger *zap.Logger) *Archive {
	return &Archive{index: index, logger: logger}
}

// List returns the object keys archived for the caller
// @Summary      List archived transcripts
// @Description  Only available when transcript archiving is enabled
// @Tags         Interviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  interview.ArchiveListResponse
// @Failure      401  {object}  common.ErrorResponse  "Missing or invalid session"
// @Failure      502  {object}  common.ErrorResponse  "Object storage error"
// @Router       /archives [get]
func (h *Archive) List(c echo.Context) error {
	userID, ok := c.Get(httpmw.UserIDKey).(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, errors.ErrMissingAuthHeader())
	}

	keys, err := h.index.ListArchives(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrExternalAPIFailed("storage", err))
	}
	return HandleSuccess(h.logger, c, interviewDTO.ArchiveListResponse{Keys: keys})
}
