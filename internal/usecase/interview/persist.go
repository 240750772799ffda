package interview

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	"github.com/johnquangdev/interview-coach/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
)

// RecordPersister writes finished interviews to the store
type RecordPersister struct {
	repo   repositories.InterviewRepository
	logger *zap.Logger
}

// NewRecordPersister creates a record persister
func NewRecordPersister(repo repositories.InterviewRepository, logger *zap.Logger) *RecordPersister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordPersister{repo: repo, logger: logger}
}

// SaveRecord inserts one record and returns it with the generated fields filled in
func (p *RecordPersister) SaveRecord(ctx context.Context, userID uuid.UUID, ictx entities.InterviewContext, transcript entities.Transcript, feedback string, score entities.Score) (*entities.Interview, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrPersistence, entities.ErrEmptyUserID)
	}

	if !score.Valid() {
		p.logger.Warn("invalid score replaced before insert", zap.Int("score", int(score)))
		score = entities.ScoreUnavailable
	}

	record := entities.NewInterview(userID, ictx, transcript, feedback, score)
	if err := p.repo.Create(ctx, record); err != nil {
		p.logger.Error("failed to save interview",
			zap.String("stage", "persist"),
			zap.String("user_id", userID.String()),
			zap.String("conversation_id", ictx.ConversationID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrPersistence, err)
	}
	return record, nil
}
