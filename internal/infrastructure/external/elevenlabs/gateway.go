package elevenlabs

import (
	"context"
	"errors"
	"strings"

	pkgai "github.com/johnquangdev/interview-coach/pkg/ai"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// ConversationAPI is the subset of the ElevenLabs client used by the gateway
type ConversationAPI interface {
	GetConversation(ctx context.Context, conversationID string) (*pkgai.ConversationResponse, error)
}

// Gateway translates ElevenLabs conversations into domain conversation jobs
type Gateway struct {
	api ConversationAPI
}

// NewGateway creates a conversation gateway
func NewGateway(api ConversationAPI) *Gateway {
	return &Gateway{api: api}
}

// GetConversation fetches a conversation and normalizes its status and turns
func (g *Gateway) GetConversation(ctx context.Context, conversationID string) (*entities.ConversationJob, error) {
	resp, err := g.api.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errors.New("empty conversation response")
	}

	job := &entities.ConversationJob{
		ID:     conversationID,
		Status: entities.ConversationStatus(strings.ToLower(strings.TrimSpace(resp.Status))),
	}
	if job.Status != entities.ConversationDone {
		return job, nil
	}

	job.Turns = make(entities.Transcript, 0, len(resp.Transcript))
	for _, t := range resp.Transcript {
		msg := ""
		if t.Message != nil {
			msg = *t.Message
		}
		job.Turns = append(job.Turns, entities.TranscriptTurn{
			Role:    entities.NormalizeRole(t.Role),
			Message: msg,
		})
	}
	return job, nil
}
