package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// AI provider selection: "gemini" or "openai".
	AIProvider string

	// Gemini (also serves vision OCR).
	GeminiAPIKey string
	GeminiModel  string

	// OpenAI (alternative text-generation provider).
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Image search
	PixabayAPIKey string

	// Optional API auth; empty disables the check.
	APIKey string

	// Project storage
	DBPath string

	// Upload limits
	MaxUploadBytes int64

	// Batch extraction
	MaxConcurrentExtract int

	// Outbound AI call budget
	GenerateTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		AIProvider:   envOr("AI_PROVIDER", "gemini"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", "gemini-2.5-flash"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		PixabayAPIKey: os.Getenv("PIXABAY_API_KEY"),

		APIKey: os.Getenv("PAPERGEN_API_KEY"),

		DBPath: envOr("DB_PATH", "papergen.db"),

		MaxUploadBytes:       envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB
		MaxConcurrentExtract: envInt("MAX_CONCURRENT_EXTRACT", 4),

		GenerateTimeout: envDuration("GENERATE_TIMEOUT", 120*time.Second),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.MaxConcurrentExtract <= 0 {
		cfg.MaxConcurrentExtract = 4
	}
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = 120 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.AIProvider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER=gemini")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q (want gemini or openai)", c.AIProvider)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
