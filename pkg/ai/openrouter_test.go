package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnquangdev/interview-coach/pkg/config"
)

func TestChatCompletion_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected authorization %q", got)
		}
		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Model != "test-model" {
			t.Fatalf("expected default model, got %s", payload.Model)
		}
		if len(payload.Messages) != 2 || payload.Messages[0].Role != "system" {
			t.Fatalf("unexpected messages %+v", payload.Messages)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Strengths:\n- clear"}}]}`))
	}))
	defer ts.Close()

	client := NewOpenRouterClient(config.CompletionConfig{APIKey: "test-key", BaseURL: ts.URL + "/", Model: "test-model"})
	out, err := client.ChatCompletion(context.Background(), ChatRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: "coach"},
			{Role: "user", Content: "Interview Transcript:\n..."},
		},
	})
	if err != nil {
		t.Fatalf("ChatCompletion failed: %v", err)
	}
	if out != "Strengths:\n- clear" {
		t.Fatalf("unexpected content %q", out)
	}
}

func TestChatCompletion_ErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer ts.Close()

	client := NewOpenRouterClient(config.CompletionConfig{APIKey: "k", BaseURL: ts.URL, Model: "m"})
	_, err := client.ChatCompletion(context.Background(), ChatRequest{Messages: []ChatMessage{{Role: "user", Content: "x"}}})
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected rate limited error, got %v", err)
	}
}

func TestChatCompletion_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	client := NewOpenRouterClient(config.CompletionConfig{APIKey: "k", BaseURL: ts.URL, Model: "m"})
	if _, err := client.ChatCompletion(context.Background(), ChatRequest{}); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
