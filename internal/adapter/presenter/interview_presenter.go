package presenter

import (
	interviewDTO "github.com/johnquangdev/interview-coach/internal/adapter/dto/interview"
	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// ToInterviewContext converts the chat request into the pipeline input
func ToInterviewContext(req *interviewDTO.ChatRequest) entities.InterviewContext {
	return entities.InterviewContext{
		ConversationID: req.ConversationID,
		JobDescription: req.JobDescription,
		InterviewType:  req.InterviewType,
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
	}
}

// ToInterviewResponse converts an owner-stripped interview to its response DTO
func ToInterviewResponse(i *entities.PublicInterview) *interviewDTO.InterviewResponse {
	if i == nil {
		return nil
	}
	var turns []interviewDTO.TurnResponse
	if len(i.Transcript) > 0 {
		turns = make([]interviewDTO.TurnResponse, 0, len(i.Transcript))
		for _, t := range i.Transcript {
			turns = append(turns, interviewDTO.TurnResponse{Role: string(t.Role), Message: t.Message})
		}
	}
	return &interviewDTO.InterviewResponse{
		ID:             i.ID,
		JobDescription: i.JobDescription,
		Type:           i.InterviewType,
		CompanyName:    i.CompanyName,
		JobTitle:       i.JobTitle,
		ConversationID: i.ConversationID,
		ChatHistory:    i.ChatHistory,
		Transcript:     turns,
		Feedback:       i.Feedback,
		Score:          int(i.Score),
		CreatedAt:      i.CreatedAt,
	}
}

// ToInterviewListResponse converts a list of interviews, never returning nil
func ToInterviewListResponse(list []entities.PublicInterview) []*interviewDTO.InterviewResponse {
	out := make([]*interviewDTO.InterviewResponse, 0, len(list))
	for i := range list {
		out = append(out, ToInterviewResponse(&list[i]))
	}
	return out
}
