package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_KEY", "anon-key")
	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")
	t.Setenv("ELEVENLABS_API_KEY", "xi-key")
	t.Setenv("COMPLETION_API_KEY", "or-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Pipeline.PollInterval != time.Second {
		t.Fatalf("expected 1s poll interval, got %s", cfg.Pipeline.PollInterval)
	}
	if cfg.Pipeline.PollTimeout != 2*time.Minute {
		t.Fatalf("expected 2m poll timeout, got %s", cfg.Pipeline.PollTimeout)
	}
	if cfg.Database.Driver != StoreDriverSupabase {
		t.Fatalf("expected supabase store driver, got %s", cfg.Database.Driver)
	}
	if cfg.Completion.Model != "google/gemini-2.0-flash-001" {
		t.Fatalf("unexpected default model %s", cfg.Completion.Model)
	}
	if cfg.Supabase.Table != "interviews" {
		t.Fatalf("unexpected default table %s", cfg.Supabase.Table)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("TRANSCRIPT_POLL_INTERVAL", "250ms")
	t.Setenv("TRANSCRIPT_MAX_POLLS", "30")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Pipeline.PollInterval != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", cfg.Pipeline.PollInterval)
	}
	if cfg.Pipeline.MaxPolls != 30 {
		t.Fatalf("expected 30 max polls, got %d", cfg.Pipeline.MaxPolls)
	}
	if cfg.Database.Driver != StoreDriverPostgres {
		t.Fatalf("expected postgres driver, got %s", cfg.Database.Driver)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.Server.AllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Supabase:   SupabaseConfig{URL: "https://x.supabase.co", Key: "k", ServiceKey: "sk"},
			ElevenLabs: ElevenLabsConfig{APIKey: "xi"},
			Completion: CompletionConfig{APIKey: "or"},
			Database:   DatabaseConfig{Driver: StoreDriverSupabase},
			Pipeline:   PipelineConfig{PollInterval: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing supabase url", mutate: func(c *Config) { c.Supabase.URL = "" }, wantErr: "SUPABASE_URL"},
		{name: "missing elevenlabs key", mutate: func(c *Config) { c.ElevenLabs.APIKey = "" }, wantErr: "ELEVENLABS_API_KEY"},
		{name: "missing completion key", mutate: func(c *Config) { c.Completion.APIKey = "" }, wantErr: "COMPLETION_API_KEY"},
		{name: "supabase store without service key", mutate: func(c *Config) { c.Supabase.ServiceKey = "" }, wantErr: "SUPABASE_SERVICE_KEY"},
		{name: "postgres store without service key", mutate: func(c *Config) {
			c.Supabase.ServiceKey = ""
			c.Database.Driver = StoreDriverPostgres
		}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "STORE_DRIVER"},
		{name: "zero poll interval", mutate: func(c *Config) { c.Pipeline.PollInterval = 0 }, wantErr: "TRANSCRIPT_POLL_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestStoreKey_UsesServiceKey(t *testing.T) {
	cfg := Config{Supabase: SupabaseConfig{Key: "anon", ServiceKey: "service"}}
	if got := cfg.StoreKey(); got != "service" {
		t.Fatalf("expected service key, got %s", got)
	}
}

func TestLoad_SupabaseStoreRequiresServiceKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SUPABASE_SERVICE_KEY", "")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SUPABASE_SERVICE_KEY") {
		t.Fatalf("expected missing service key error, got %v", err)
	}
}
