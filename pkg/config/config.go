package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store drivers for interview records
const (
	StoreDriverSupabase = "supabase"
	StoreDriverPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Supabase   SupabaseConfig
	ElevenLabs ElevenLabsConfig
	Completion CompletionConfig
	Pipeline   PipelineConfig
	Storage    StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"127.0.0.1"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds direct Postgres configuration, used when STORE_DRIVER=postgres
type DatabaseConfig struct {
	Driver      string `envconfig:"STORE_DRIVER" default:"supabase"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"postgres"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"require"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"2"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration for the revoked-token list
type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// SupabaseConfig holds the hosted auth and REST store settings
type SupabaseConfig struct {
	URL        string `envconfig:"SUPABASE_URL"`
	Key        string `envconfig:"SUPABASE_KEY"`
	ServiceKey string `envconfig:"SUPABASE_SERVICE_KEY"`
	Table      string `envconfig:"SUPABASE_INTERVIEWS_TABLE" default:"interviews"`
}

// ElevenLabsConfig holds conversational AI provider settings
type ElevenLabsConfig struct {
	APIKey  string        `envconfig:"ELEVENLABS_API_KEY"`
	BaseURL string        `envconfig:"ELEVENLABS_BASE_URL" default:"https://api.elevenlabs.io"`
	Timeout time.Duration `envconfig:"ELEVENLABS_TIMEOUT" default:"30s"`
}

// CompletionConfig holds the chat completion provider settings
type CompletionConfig struct {
	APIKey  string        `envconfig:"COMPLETION_API_KEY"`
	BaseURL string        `envconfig:"COMPLETION_BASE_URL" default:"https://openrouter.ai/api/v1"`
	Model   string        `envconfig:"COMPLETION_MODEL" default:"google/gemini-2.0-flash-001"`
	Timeout time.Duration `envconfig:"COMPLETION_TIMEOUT" default:"60s"`
}

// PipelineConfig bounds the feedback pipeline
type PipelineConfig struct {
	PollInterval time.Duration `envconfig:"TRANSCRIPT_POLL_INTERVAL" default:"1s"`
	PollTimeout  time.Duration `envconfig:"TRANSCRIPT_POLL_TIMEOUT" default:"2m"`
	MaxPolls     uint64        `envconfig:"TRANSCRIPT_MAX_POLLS" default:"0"`
	Timeout      time.Duration `envconfig:"PIPELINE_TIMEOUT" default:"5m"`
}

// StorageConfig holds transcript archive configuration
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"interview-transcripts"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.Supabase.Key == "" {
		return fmt.Errorf("SUPABASE_KEY is required")
	}
	if c.ElevenLabs.APIKey == "" {
		return fmt.Errorf("ELEVENLABS_API_KEY is required")
	}
	if c.Completion.APIKey == "" {
		return fmt.Errorf("COMPLETION_API_KEY is required")
	}
	switch c.Database.Driver {
	case StoreDriverSupabase:
		// row-level security admits only the service role for server-side writes
		if c.Supabase.ServiceKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_KEY is required when STORE_DRIVER=%s", StoreDriverSupabase)
		}
	case StoreDriverPostgres:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverSupabase, StoreDriverPostgres, c.Database.Driver)
	}
	if c.Pipeline.PollInterval <= 0 {
		return fmt.Errorf("TRANSCRIPT_POLL_INTERVAL must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// StoreKey returns the key used for REST store access
func (c *Config) StoreKey() string {
	return c.Supabase.ServiceKey
}
