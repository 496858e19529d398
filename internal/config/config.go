// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Draft slot backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// PDF renderers.
const (
	RendererFPDF     = "fpdf"
	RendererChromium = "chromium"
)

// Config holds every setting of the server and CLI. Values come from the
// environment (optionally seeded from a .env file by the caller).
type Config struct {
	Port string

	// Draft slot
	DraftBackend     string
	DraftPath        string
	DraftKey         string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	AutosaveInterval time.Duration

	// AI collaborator
	OpenAIAPIKey  string
	OpenAIBaseURL string
	AIModel       string
	AITimeout     time.Duration
	AIRateLimit   int

	// Export
	Renderer    string
	ChromePath  string
	ArtifactDir string

	LogLevel string
}

// Defaults returns the configuration used when no variable is set.
func Defaults() Config {
	return Config{
		Port:             "3000",
		DraftBackend:     BackendFile,
		DraftPath:        "resume-data/draft/resume-draft.json",
		DraftKey:         "resume-draft",
		RedisAddr:        "localhost:6379",
		AutosaveInterval: 30 * time.Second,
		AIModel:          "gpt-4o",
		AITimeout:        60 * time.Second,
		AIRateLimit:      20,
		Renderer:         RendererFPDF,
		LogLevel:         "info",
	}
}

// Load reads the environment on top of Defaults and validates the result.
func Load() (*Config, error) {
	cfg := Defaults()

	str := func(env string, dst *string) {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
	str("PORT", &cfg.Port)
	str("DRAFT_BACKEND", &cfg.DraftBackend)
	str("DRAFT_PATH", &cfg.DraftPath)
	str("DRAFT_KEY", &cfg.DraftKey)
	str("REDIS_ADDR", &cfg.RedisAddr)
	str("REDIS_PWD", &cfg.RedisPassword)
	str("OPENAI_API_KEY", &cfg.OpenAIAPIKey)
	str("OPENAI_BASE_URL", &cfg.OpenAIBaseURL)
	str("AI_MODEL", &cfg.AIModel)
	str("RENDERER", &cfg.Renderer)
	str("CHROME_PATH", &cfg.ChromePath)
	str("ARTIFACT_DIR", &cfg.ArtifactDir)
	str("LOG_LEVEL", &cfg.LogLevel)

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: REDIS_DB must be an integer: %w", err)
		}
		cfg.RedisDB = n
	}
	if v := os.Getenv("AI_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: AI_RATE_LIMIT must be an integer: %w", err)
		}
		cfg.AIRateLimit = n
	}
	if v := os.Getenv("AUTOSAVE_INTERVAL"); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config error: AUTOSAVE_INTERVAL: %w", err)
		}
		cfg.AutosaveInterval = d
	}
	if v := os.Getenv("AI_TIMEOUT"); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config error: AI_TIMEOUT: %w", err)
		}
		cfg.AITimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parseDuration accepts Go durations and bare integers (seconds).
func parseDuration(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}

// Validate checks enums and ranges.
func (c *Config) Validate() error {
	switch c.DraftBackend {
	case BackendFile:
		if c.DraftPath == "" {
			return fmt.Errorf("config error: DRAFT_PATH is required for the file backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" || c.DraftKey == "" {
			return fmt.Errorf("config error: REDIS_ADDR and DRAFT_KEY are required for the redis backend")
		}
	default:
		return fmt.Errorf("config error: unknown DRAFT_BACKEND %q", c.DraftBackend)
	}

	switch c.Renderer {
	case RendererFPDF, RendererChromium:
	default:
		return fmt.Errorf("config error: unknown RENDERER %q", c.Renderer)
	}

	if c.AutosaveInterval < 0 {
		return fmt.Errorf("config error: AUTOSAVE_INTERVAL must be non-negative")
	}
	if c.AutosaveInterval > 0 && c.AutosaveInterval < time.Second {
		return fmt.Errorf("config error: AUTOSAVE_INTERVAL must be at least 1s")
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("config error: AI_TIMEOUT must be positive")
	}
	if c.AIRateLimit < 0 {
		return fmt.Errorf("config error: AI_RATE_LIMIT must be non-negative")
	}
	return nil
}
