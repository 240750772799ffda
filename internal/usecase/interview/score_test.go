package interview

import (
	"context"
	"strings"
	"testing"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		raw  string
		want entities.Score
	}{
		{"0", 0},
		{"100", 100},
		{" 73\n", 73},
		{"101", entities.ScoreUnavailable},
		{"-5", entities.ScoreUnavailable},
		{"-1", entities.ScoreUnavailable},
		{"eighty", entities.ScoreUnavailable},
		{"85/100", entities.ScoreUnavailable},
		{"", entities.ScoreUnavailable},
		{"72.5", entities.ScoreUnavailable},
	}
	for _, tt := range tests {
		got, _ := ParseScore(tt.raw)
		if got != tt.want {
			t.Errorf("ParseScore(%q) = %d, want %d", tt.raw, got, tt.want)
		}
		if !got.Valid() {
			t.Errorf("ParseScore(%q) produced invalid score %d", tt.raw, got)
		}
	}
}

func TestExtractScore(t *testing.T) {
	completion := coachCompletion("64")
	res := NewScoreExtractor(completion, "m", nil).ExtractScore(context.Background(), "Strengths:\n- ok")
	if res.Degraded || res.Score != 64 {
		t.Fatalf("unexpected result %+v", res)
	}

	req := completion.requests[0]
	if len(req.Messages) != 1 || req.Messages[0].Role != entities.ChatRoleSystem {
		t.Fatalf("score request must be a single system message, got %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[0].Content, "Feedback for the interview: Strengths:\n- ok") {
		t.Fatalf("feedback missing from score prompt: %q", req.Messages[0].Content)
	}
}

func TestExtractScore_FailsClosed(t *testing.T) {
	for name, completion := range map[string]*fakeCompletion{
		"transport": {respond: func(entities.CompletionRequest) (string, error) { return "", errProviderDown }},
		"garbage":   coachCompletion("I would say 70"),
		"range":     coachCompletion("250"),
	} {
		t.Run(name, func(t *testing.T) {
			res := NewScoreExtractor(completion, "m", nil).ExtractScore(context.Background(), "feedback")
			if !res.Degraded || res.Score != entities.ScoreUnavailable {
				t.Fatalf("expected sentinel score, got %+v", res)
			}
		})
	}
}
