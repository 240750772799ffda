package interview

import (
	"context"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// ConversationProvider returns the current state of a voice interview conversation
type ConversationProvider interface {
	GetConversation(ctx context.Context, conversationID string) (*entities.ConversationJob, error)
}

// CompletionProvider runs a single chat completion and returns the generated text
type CompletionProvider interface {
	Complete(ctx context.Context, req entities.CompletionRequest) (string, error)
}

// Archiver keeps a copy of a saved interview outside the database
type Archiver interface {
	ArchiveInterview(ctx context.Context, interview *entities.Interview) (string, error)
}
