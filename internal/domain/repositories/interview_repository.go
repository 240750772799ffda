package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// InterviewRepository defines persistence operations for interview feedback records
type InterviewRepository interface {
	// Create inserts the record and fills in its generated fields
	Create(ctx context.Context, interview *entities.Interview) error
	// ListByUser returns the records owned by userID, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Interview, error)
}
