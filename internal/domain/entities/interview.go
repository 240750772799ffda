package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InterviewContext is the request bundle describing a finished interview
type InterviewContext struct {
	ConversationID string
	JobDescription string
	InterviewType  string
	CompanyName    string
	JobTitle       string
}

// Validate checks the fields the pipeline cannot run without
func (c InterviewContext) Validate() error {
	if strings.TrimSpace(c.ConversationID) == "" {
		return ErrEmptyConversationID
	}
	return nil
}

// Interview is the persisted feedback record of one interview
type Interview struct {
	ID             int64                               `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID         uuid.UUID                           `json:"user_id" gorm:"type:uuid;not null;index"`
	JobDescription string                              `json:"job_description" gorm:"type:text"`
	InterviewType  string                              `json:"type" gorm:"column:type;type:varchar(50)"`
	CompanyName    string                              `json:"company_name" gorm:"type:varchar(255)"`
	JobTitle       string                              `json:"job_title" gorm:"type:varchar(255)"`
	ConversationID string                              `json:"conversation_id" gorm:"type:varchar(255);index"`
	ChatHistory    string                              `json:"chat_history" gorm:"type:text"`
	Transcript     datatypes.JSONSlice[TranscriptTurn] `json:"transcript" gorm:"type:jsonb"`
	Feedback       string                              `json:"feedback" gorm:"type:text"`
	Score          Score                               `json:"score" gorm:"not null"`
	CreatedAt      time.Time                           `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Interview) TableName() string {
	return "interviews"
}

// NewInterview assembles a record owned by userID.
// A score that may not be stored is replaced with ScoreUnavailable.
func NewInterview(userID uuid.UUID, ictx InterviewContext, transcript Transcript, feedback string, score Score) *Interview {
	if !score.Valid() {
		score = ScoreUnavailable
	}
	turns := make([]TranscriptTurn, len(transcript))
	copy(turns, transcript)
	return &Interview{
		UserID:         userID,
		JobDescription: ictx.JobDescription,
		InterviewType:  ictx.InterviewType,
		CompanyName:    ictx.CompanyName,
		JobTitle:       ictx.JobTitle,
		ConversationID: ictx.ConversationID,
		ChatHistory:    transcript.Flatten(),
		Transcript:     datatypes.JSONSlice[TranscriptTurn](turns),
		Feedback:       feedback,
		Score:          score,
	}
}

// PublicInterview is an interview record without its owner
type PublicInterview struct {
	ID             int64            `json:"id"`
	JobDescription string           `json:"job_description"`
	InterviewType  string           `json:"type"`
	CompanyName    string           `json:"company_name"`
	JobTitle       string           `json:"job_title"`
	ConversationID string           `json:"conversation_id,omitempty"`
	ChatHistory    string           `json:"chat_history"`
	Transcript     []TranscriptTurn `json:"transcript,omitempty"`
	Feedback       string           `json:"feedback"`
	Score          Score            `json:"score"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ToPublic strips the owner from the record
func (i *Interview) ToPublic() PublicInterview {
	return PublicInterview{
		ID:             i.ID,
		JobDescription: i.JobDescription,
		InterviewType:  i.InterviewType,
		CompanyName:    i.CompanyName,
		JobTitle:       i.JobTitle,
		ConversationID: i.ConversationID,
		ChatHistory:    i.ChatHistory,
		Transcript:     []TranscriptTurn(i.Transcript),
		Feedback:       i.Feedback,
		Score:          i.Score,
		CreatedAt:      i.CreatedAt,
	}
}
