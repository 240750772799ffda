package interview

import "time"

// TurnResponse is one transcript turn
type TurnResponse struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// InterviewResponse is a saved interview without its owner
type InterviewResponse struct {
	ID             int64          `json:"id"`
	JobDescription string         `json:"job_description"`
	Type           string         `json:"type"`
	CompanyName    string         `json:"company_name"`
	JobTitle       string         `json:"job_title"`
	ConversationID string         `json:"conversation_id,omitempty"`
	ChatHistory    string         `json:"chat_history"`
	Transcript     []TurnResponse `json:"transcript,omitempty"`
	Feedback       string         `json:"feedback"`
	Score          int            `json:"score"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ArchiveListResponse lists archived transcript object keys
type ArchiveListResponse struct {
	Keys []string `json:"keys"`
}
