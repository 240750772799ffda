package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	postgrest "github.com/supabase-community/postgrest-go"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	"github.com/johnquangdev/interview-coach/internal/domain/repositories"
)

const interviewColumns = "id,user_id,job_description,type,company_name,job_title,conversation_id,chat_history,transcript,feedback,score,created_at"

// InterviewRESTRepository stores interviews through the Supabase REST API
type InterviewRESTRepository struct {
	client *postgrest.Client
	table  string
}

var _ repositories.InterviewRepository = (*InterviewRESTRepository)(nil)

// NewPostgrestClient creates a PostgREST client authenticated with the given key
func NewPostgrestClient(supabaseURL, key string) (*postgrest.Client, error) {
	client := postgrest.NewClient(supabaseURL+"/rest/v1", "", map[string]string{
		"apikey":        key,
		"Authorization": fmt.Sprintf("Bearer %s", key),
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("failed to initialize postgrest client: %w", client.ClientError)
	}
	return client, nil
}

// NewInterviewRESTRepository creates a new REST-backed interview repository
func NewInterviewRESTRepository(client *postgrest.Client, table string) *InterviewRESTRepository {
	if table == "" {
		table = entities.Interview{}.TableName()
	}
	return &InterviewRESTRepository{client: client, table: table}
}

// Create inserts the record and copies back the generated id and timestamp.
// The postgrest client has no context support, so ctx is only checked before the call.
func (r *InterviewRESTRepository) Create(ctx context.Context, interview *entities.Interview) error {
	if interview == nil {
		return errors.New("interview cannot be nil")
	}
	if interview.UserID == uuid.Nil {
		return entities.ErrEmptyUserID
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// id and created_at are left to column defaults
	row := map[string]interface{}{
		"user_id":         interview.UserID.String(),
		"job_description": interview.JobDescription,
		"type":            interview.InterviewType,
		"company_name":    interview.CompanyName,
		"job_title":       interview.JobTitle,
		"conversation_id": interview.ConversationID,
		"chat_history":    interview.ChatHistory,
		"transcript":      interview.Transcript,
		"feedback":        interview.Feedback,
		"score":           interview.Score,
	}

	var inserted []entities.Interview
	_, err := r.client.From(r.table).Insert(row, false, "", "representation", "").ExecuteTo(&inserted)
	if err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	if len(inserted) == 0 {
		return errors.New("insert interview: no row returned")
	}

	interview.ID = inserted[0].ID
	interview.CreatedAt = inserted[0].CreatedAt
	return nil
}

// ListByUser retrieves every interview owned by the user, newest first
func (r *InterviewRESTRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Interview, error) {
	if userID == uuid.Nil {
		return nil, entities.ErrEmptyUserID
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []*entities.Interview
	_, err := r.client.From(r.table).
		Select(interviewColumns, "", false).
		Eq("user_id", userID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	return rows, nil
}
