package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/johnquangdev/interview-coach/pkg/config"
)

// ElevenLabsClient is a minimal client for the ElevenLabs Conversational AI API
type ElevenLabsClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewElevenLabsClient creates an ElevenLabs client using the provided config.
func NewElevenLabsClient(cfg config.ElevenLabsConfig) *ElevenLabsClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.elevenlabs.io"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ElevenLabsClient{
		apiKey:  cfg.APIKey,
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
	}
}

// ConversationTurn is a single entry of a conversation transcript
type ConversationTurn struct {
	Role           string  `json:"role"`
	Message        *string `json:"message"`
	TimeInCallSecs float64 `json:"time_in_call_secs,omitempty"`
}

// ConversationResponse is the subset of GET /v1/convai/conversations/{id} we consume
type ConversationResponse struct {
	AgentID        string             `json:"agent_id"`
	ConversationID string             `json:"conversation_id"`
	Status         string             `json:"status"`
	Transcript     []ConversationTurn `json:"transcript"`
}

// APIError is returned when the provider answers with a non-2xx status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("elevenlabs returned status %d: %s", e.StatusCode, e.Body)
}

// GetConversation fetches the current state of a conversation
func (c *ElevenLabsClient) GetConversation(ctx context.Context, conversationID string) (*ConversationResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/convai/conversations/%s", c.baseURL, url.PathEscape(conversationID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var cr ConversationResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	return &cr, nil
}
