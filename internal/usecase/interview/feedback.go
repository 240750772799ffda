package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

const feedbackFormat = `Give bullet points reviewing the interview: 3 bullet points for strengths if there are any, and 3 bullet points for areas of improvement if there are any. DO NOT ADD ANYTHING ELSE.
Use the following format:
Strengths:
- Strength 1
- Strength 2
- Strength 3
Areas for Improvement:
- Improvement 1
- Improvement 2
- Improvement 3`

// FeedbackGenerator asks the completion provider for a structured interview review
type FeedbackGenerator struct {
	completion CompletionProvider
	model      string
	logger     *zap.Logger
}

// NewFeedbackGenerator creates a feedback generator
func NewFeedbackGenerator(completion CompletionProvider, model string, logger *zap.Logger) *FeedbackGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackGenerator{completion: completion, model: model, logger: logger}
}

// GenerateFeedback never fails; a failed call yields a degraded result whose text explains the error
func (g *FeedbackGenerator) GenerateFeedback(ctx context.Context, ictx entities.InterviewContext, transcript entities.Transcript) entities.FeedbackResult {
	text, err := g.completion.Complete(ctx, entities.CompletionRequest{
		Model: g.model,
		Messages: []entities.ChatMessage{
			{Role: entities.ChatRoleSystem, Content: feedbackInstruction(ictx)},
			{Role: entities.ChatRoleUser, Content: "Interview Transcript:\n" + transcript.Flatten()},
		},
	})
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("empty completion")
	}
	if err != nil {
		g.logger.Warn("feedback generation degraded",
			zap.String("stage", "generate_feedback"),
			zap.String("conversation_id", ictx.ConversationID),
			zap.Error(err),
		)
		return entities.DegradedFeedback(err)
	}
	return entities.FeedbackResult{Text: strings.TrimSpace(text)}
}

func feedbackInstruction(ictx entities.InterviewContext) string {
	var sb strings.Builder
	sb.WriteString("You are an expert career coach analyzing an interview transcript.\n")
	fmt.Fprintf(&sb, "Job Description: %s\n", ictx.JobDescription)
	fmt.Fprintf(&sb, "Interview Type: %s\n", ictx.InterviewType)
	if ictx.JobTitle != "" {
		fmt.Fprintf(&sb, "Job Title: %s\n", ictx.JobTitle)
	}
	if ictx.CompanyName != "" {
		fmt.Fprintf(&sb, "Company: %s\n", ictx.CompanyName)
	}
	sb.WriteString(feedbackFormat)
	sb.WriteString("\n")
	return sb.String()
}
