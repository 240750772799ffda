package entities

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNormalizeRole(t *testing.T) {
	tests := map[string]TranscriptRole{
		"agent":       RoleInterviewer,
		"Agent":       RoleInterviewer,
		"user":        RoleCandidate,
		" USER ":      RoleCandidate,
		"interviewer": RoleInterviewer,
		"Moderator":   TranscriptRole("moderator"),
	}
	for in, want := range tests {
		if got := NormalizeRole(in); got != want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTranscriptFlatten(t *testing.T) {
	tr := Transcript{
		{Role: RoleInterviewer, Message: "Why this company?"},
		{Role: RoleCandidate, Message: "I like the product."},
		{Role: RoleInterviewer, Message: "Thanks."},
	}
	want := "Interviewer: Why this company?\nCandidate: I like the product.\nInterviewer: Thanks."
	if got := tr.Flatten(); got != want {
		t.Fatalf("Flatten() = %q, want %q", got, want)
	}
	if got := (Transcript{}).Flatten(); got != "" {
		t.Fatalf("empty transcript should flatten to empty string, got %q", got)
	}
}

func TestConversationStatusIsTerminal(t *testing.T) {
	for _, s := range []ConversationStatus{ConversationDone, ConversationFailed} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []ConversationStatus{ConversationInitiated, ConversationInProgress, ConversationProcessing, "unknown"} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestNewScore(t *testing.T) {
	tests := []struct {
		in   int
		want Score
	}{
		{0, 0}, {42, 42}, {100, 100}, {-1, ScoreUnavailable}, {-7, ScoreUnavailable}, {101, ScoreUnavailable},
	}
	for _, tt := range tests {
		got := NewScore(tt.in)
		if got != tt.want {
			t.Errorf("NewScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
		if !got.Valid() {
			t.Errorf("NewScore(%d) produced invalid score %d", tt.in, got)
		}
	}
	if Score(150).Valid() || Score(-2).Valid() {
		t.Fatal("out of range scores must be invalid")
	}
}

func TestDegradedFeedback(t *testing.T) {
	fb := DegradedFeedback(errors.New("provider down"))
	if !fb.Degraded {
		t.Fatal("expected degraded feedback")
	}
	if fb.Text != "Error generating feedback: provider down" {
		t.Fatalf("unexpected text %q", fb.Text)
	}
}

func TestNewInterviewCoercesScore(t *testing.T) {
	rec := NewInterview(uuid.New(), InterviewContext{ConversationID: "c"}, nil, "fb", Score(250))
	if rec.Score != ScoreUnavailable {
		t.Fatalf("expected coerced score, got %d", rec.Score)
	}
}

func TestToPublicStripsOwner(t *testing.T) {
	owner := uuid.New()
	rec := NewInterview(owner, InterviewContext{
		ConversationID: "abc",
		JobDescription: "Build APIs",
		InterviewType:  "technical",
		CompanyName:    "Acme",
		JobTitle:       "Backend Engineer",
	}, Transcript{{Role: RoleInterviewer, Message: "Hi"}}, "Strengths:", 80)
	rec.ID = 7

	pub := rec.ToPublic()
	b, err := json.Marshal(pub)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	if strings.Contains(body, "user_id") || strings.Contains(body, owner.String()) {
		t.Fatalf("public record leaked owner: %s", body)
	}
	if pub.ChatHistory != "Interviewer: Hi" || pub.InterviewType != "technical" || pub.Score != 80 {
		t.Fatalf("unexpected public record %+v", pub)
	}
	if !strings.Contains(body, `"type":"technical"`) {
		t.Fatalf("expected type column in body: %s", body)
	}
}

func TestInterviewContextValidate(t *testing.T) {
	if err := (InterviewContext{}).Validate(); !errors.Is(err, ErrEmptyConversationID) {
		t.Fatalf("expected ErrEmptyConversationID, got %v", err)
	}
	if err := (InterviewContext{ConversationID: "x"}).Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
