package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *AuthProvider {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	client := gotrue.New("test", "anon-key").WithCustomGoTrueURL(ts.URL)
	return NewAuthProvider(client)
}

func TestSignIn(t *testing.T) {
	userID := uuid.New()
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" || r.URL.Query().Get("grant_type") != "password" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.String())
		}
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.co" {
			t.Fatalf("unexpected email %v", body["email"])
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "access",
			"refresh_token": "refresh",
			"token_type":    "bearer",
			"expires_in":    3600,
			"user":          map[string]interface{}{"id": userID.String(), "email": "a@b.co"},
		})
	})

	session, err := provider.SignIn(context.Background(), "a@b.co", "pw")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if session.AccessToken != "access" || session.UserID != userID || session.ExpiresIn != 3600 {
		t.Fatalf("unexpected session %+v", session)
	}
}

func TestSignIn_Rejected(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	})

	if _, err := provider.SignIn(context.Background(), "a@b.co", "bad"); err == nil {
		t.Fatal("expected error for rejected credentials")
	}
}

func TestGetUser(t *testing.T) {
	userID := uuid.New()
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); !strings.HasSuffix(got, "user-token") {
			t.Fatalf("expected user token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"id": userID.String(), "email": "a@b.co"})
	})

	identity, err := provider.GetUser(context.Background(), "user-token")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if identity.UserID != userID || identity.Email != "a@b.co" {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestGetUser_InvalidToken(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":401,"msg":"invalid JWT"}`))
	})

	if _, err := provider.GetUser(context.Background(), "expired"); err == nil {
		t.Fatal("expected error for invalid token")
	}
}

func TestCanceledContext(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := provider.GetUser(ctx, "tok"); err == nil {
		t.Fatal("expected context error")
	}
}
