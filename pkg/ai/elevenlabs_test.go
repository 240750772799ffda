package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnquangdev/interview-coach/pkg/config"
)

func TestGetConversation_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET got %s", r.Method)
		}
		if r.URL.Path != "/v1/convai/conversations/conv-1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("xi-api-key"); got != "test-key" {
			t.Fatalf("unexpected api key %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"conversation_id": "conv-1",
			"status": "done",
			"transcript": [
				{"role": "agent", "message": "Tell me about yourself."},
				{"role": "user", "message": null},
				{"role": "user", "message": "I build APIs."}
			]
		}`))
	}))
	defer ts.Close()

	client := NewElevenLabsClient(config.ElevenLabsConfig{APIKey: "test-key", BaseURL: ts.URL})
	conv, err := client.GetConversation(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("GetConversation failed: %v", err)
	}
	if conv.Status != "done" {
		t.Fatalf("unexpected status %s", conv.Status)
	}
	if len(conv.Transcript) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(conv.Transcript))
	}
	if conv.Transcript[1].Message != nil {
		t.Fatalf("expected null message to decode as nil")
	}
	if *conv.Transcript[2].Message != "I build APIs." {
		t.Fatalf("unexpected message %q", *conv.Transcript[2].Message)
	}
}

func TestGetConversation_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "conversation not found"})
	}))
	defer ts.Close()

	client := NewElevenLabsClient(config.ElevenLabsConfig{APIKey: "test-key", BaseURL: ts.URL})
	_, err := client.GetConversation(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status %d", apiErr.StatusCode)
	}
}
