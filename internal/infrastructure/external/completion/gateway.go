package completion

import (
	"context"

	pkgai "github.com/johnquangdev/interview-coach/pkg/ai"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// ChatAPI is the subset of the chat completion client used by the gateway
type ChatAPI interface {
	ChatCompletion(ctx context.Context, req pkgai.ChatRequest) (string, error)
}

// Gateway adapts an OpenAI-compatible chat API to provider-neutral completion requests
type Gateway struct {
	api ChatAPI
}

// NewGateway creates a completion gateway
func NewGateway(api ChatAPI) *Gateway {
	return &Gateway{api: api}
}

// Complete sends the request and returns the generated text
func (g *Gateway) Complete(ctx context.Context, req entities.CompletionRequest) (string, error) {
	msgs := make([]pkgai.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, pkgai.ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	return g.api.ChatCompletion(ctx, pkgai.ChatRequest{
		Model:    req.Model,
		Messages: msgs,
	})
}
