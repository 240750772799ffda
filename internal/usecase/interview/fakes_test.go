package interview

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

type scriptedConversations struct {
	mu       sync.Mutex
	statuses []entities.ConversationStatus
	turns    entities.Transcript
	err      error
	calls    int
}

func (s *scriptedConversations) GetConversation(ctx context.Context, id string) (*entities.ConversationJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	idx := s.calls - 1
	if idx >= len(s.statuses) {
		idx = len(s.statuses) - 1
	}
	job := &entities.ConversationJob{ID: id, Status: s.statuses[idx]}
	if job.Status == entities.ConversationDone {
		job.Turns = s.turns
	}
	return job, nil
}

func (s *scriptedConversations) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakeCompletion struct {
	mu       sync.Mutex
	respond  func(req entities.CompletionRequest) (string, error)
	requests []entities.CompletionRequest
}

func (f *fakeCompletion) Complete(ctx context.Context, req entities.CompletionRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.respond(req)
}

func (f *fakeCompletion) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// coachCompletion answers feedback requests with review text and score requests with score
func coachCompletion(score string) *fakeCompletion {
	return &fakeCompletion{respond: func(req entities.CompletionRequest) (string, error) {
		if len(req.Messages) == 2 {
			return "Strengths:\n- Clear answers\n- Good examples\n- Calm\nAreas for Improvement:\n- Brevity\n- Metrics\n- Questions", nil
		}
		return score, nil
	}}
}

type memoryRepo struct {
	mu      sync.Mutex
	nextID  int64
	records []*entities.Interview
	err     error
}

func (m *memoryRepo) Create(ctx context.Context, interview *entities.Interview) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	interview.ID = m.nextID
	interview.CreatedAt = time.Now()
	cp := *interview
	m.records = append(m.records, &cp)
	return nil
}

func (m *memoryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Interview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []*entities.Interview
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].UserID == userID {
			out = append(out, m.records[i])
		}
	}
	return out, nil
}

func (m *memoryRepo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

type recordingArchiver struct {
	keys []string
	err  error
}

func (a *recordingArchiver) ArchiveInterview(ctx context.Context, interview *entities.Interview) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	key := interview.UserID.String()
	a.keys = append(a.keys, key)
	return key, nil
}

var errProviderDown = errors.New("provider down")

func threeTurns() entities.Transcript {
	return entities.Transcript{
		{Role: entities.RoleInterviewer, Message: "Tell me about a conflict."},
		{Role: entities.RoleCandidate, Message: "I mediated a design review."},
		{Role: entities.RoleInterviewer, Message: "What was the outcome?"},
	}
}

func fastPoll() PollOptions {
	return PollOptions{Interval: time.Millisecond, Timeout: time.Second}
}
