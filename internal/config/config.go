package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	BackendSupabase = "supabase"
	BackendDynamoDB = "dynamodb"
)

type Config struct {
	// Persistence
	StoreBackend string
	PollInterval time.Duration

	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string
	ServicosTable          string
	PagamentosTable        string

	// Database (direct connection for migrations and LISTEN/NOTIFY)
	DatabaseURL string

	// DynamoDB
	AWSRegion             string
	DynamoDBEndpoint      string
	DynamoServicosTable   string
	DynamoPagamentosTable string

	// LLM extraction
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string
	LLMTimeout time.Duration
	LLMRetries int

	// Server
	Port        string
	Environment string
	BaseURL     string
	Timezone    string
	LogFile     string
}

func Load() (*Config, error) {
	cfg := &Config{
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendSupabase)),
		PollInterval: getDuration("POLL_INTERVAL", 5*time.Second),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "fotos-op"),
		ServicosTable:          getEnv("SERVICOS_TABLE", "servicos"),
		PagamentosTable:        getEnv("PAGAMENTOS_TABLE", "pagamentos_ajudantes"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		AWSRegion:             getEnv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:      getEnv("DYNAMODB_ENDPOINT", ""),
		DynamoServicosTable:   getEnv("DYNAMODB_SERVICOS_TABLE", "servicos"),
		DynamoPagamentosTable: getEnv("DYNAMODB_PAGAMENTOS_TABLE", "pagamentos_ajudantes"),

		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		LLMBaseURL: getEnv("LLM_BASE_URL", ""),
		LLMModel:   getEnv("LLM_MODEL", "google/gemini-flash-1.5"),
		LLMTimeout: getDuration("LLM_TIMEOUT", 30*time.Second),
		LLMRetries: getInt("LLM_RETRIES", 0),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		Timezone:    getEnv("TIMEZONE", "America/Sao_Paulo"),
		LogFile:     getEnv("LOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required")
		}
		if c.SupabasePublishableKey == "" {
			return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
		}
	case BackendDynamoDB:
		if c.DynamoServicosTable == "" || c.DynamoPagamentosTable == "" {
			return fmt.Errorf("DYNAMODB_SERVICOS_TABLE and DYNAMODB_PAGAMENTOS_TABLE are required")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.LLMRetries < 0 {
		return fmt.Errorf("LLM_RETRIES must not be negative")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the workshop's local time zone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) AuthEnabled() bool {
	return c.SupabaseJWTSecret != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
