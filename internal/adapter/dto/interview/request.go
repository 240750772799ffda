package interview

// ChatRequest submits a finished voice interview for feedback
type ChatRequest struct {
	ConversationID string `json:"conversation_id" validate:"required,max=255"`
	JobDescription string `json:"job_description" validate:"max=20000"`
	InterviewType  string `json:"interview_type" validate:"max=50"`
	CompanyName    string `json:"company_name" validate:"max=255"`
	JobTitle       string `json:"job_title" validate:"max=255"`
}
