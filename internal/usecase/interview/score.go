package interview

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// ScoreExtractor turns feedback text into a 0-100 score
type ScoreExtractor struct {
	completion CompletionProvider
	model      string
	logger     *zap.Logger
}

// NewScoreExtractor creates a score extractor
func NewScoreExtractor(completion CompletionProvider, model string, logger *zap.Logger) *ScoreExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreExtractor{completion: completion, model: model, logger: logger}
}

// ExtractScore always returns a score in {-1} or [0,100]
func (e *ScoreExtractor) ExtractScore(ctx context.Context, feedback string) entities.ScoreResult {
	text, err := e.completion.Complete(ctx, entities.CompletionRequest{
		Model: e.model,
		Messages: []entities.ChatMessage{
			{Role: entities.ChatRoleSystem, Content: scoreInstruction(feedback)},
		},
	})
	if err != nil {
		return e.degraded(err.Error())
	}

	score, reason := ParseScore(text)
	if reason != "" {
		return e.degraded(reason)
	}
	return entities.ScoreResult{Score: score}
}

func (e *ScoreExtractor) degraded(reason string) entities.ScoreResult {
	e.logger.Warn("score extraction degraded",
		zap.String("stage", "extract_score"),
		zap.String("reason", reason),
	)
	return entities.DegradedScore(reason)
}

// ParseScore parses a bare integer in [0,100].
// On failure it returns ScoreUnavailable and a reason.
func ParseScore(raw string) (entities.Score, string) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		return entities.ScoreUnavailable, fmt.Sprintf("not an integer: %q", s)
	}
	if n < 0 || n > 100 {
		return entities.ScoreUnavailable, fmt.Sprintf("out of range: %d", n)
	}
	return entities.Score(n), ""
}

func scoreInstruction(feedback string) string {
	return "You are an expert career coach analyzing an interview transcript.\n" +
		"Feedback for the interview: " + feedback + "\n" +
		"Based on the feedback, provide a score from 0 to 100 for the interview performance, where 0 is poor and 100 is excellent. Just provide the number without any additional text."
}
