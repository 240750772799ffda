package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	"github.com/johnquangdev/interview-coach/internal/domain/repositories"
)

// InterviewRepository handles interview data operations through GORM
type InterviewRepository struct {
	db *gorm.DB
}

var _ repositories.InterviewRepository = (*InterviewRepository)(nil)

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

// Create inserts a new interview record
func (r *InterviewRepository) Create(ctx context.Context, interview *entities.Interview) error {
	if interview == nil {
		return errors.New("interview cannot be nil")
	}
	if interview.UserID == uuid.Nil {
		return entities.ErrEmptyUserID
	}
	return r.db.WithContext(ctx).Create(interview).Error
}

// ListByUser retrieves every interview owned by the user, newest first
func (r *InterviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Interview, error) {
	if userID == uuid.Nil {
		return nil, entities.ErrEmptyUserID
	}
	var interviews []*entities.Interview
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&interviews).Error
	if err != nil {
		return nil, err
	}
	return interviews, nil
}
