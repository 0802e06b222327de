package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xivix/landing/backend/internal/gemini"
)

// Config aggregates every runtime setting of the service.
type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	gem, err := loadGeminiConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Gemini: gem}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// GeminiConfig describes access to the generative language API.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func loadGeminiConfig() (GeminiConfig, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return GeminiConfig{}, fmt.Errorf("GEMINI_API_KEY is required")
	}

	timeout := gemini.DefaultTimeout
	if seconds, err := parseOptionalIntEnv("GEMINI_TIMEOUT"); err != nil {
		return GeminiConfig{}, err
	} else if seconds != nil {
		if *seconds < 1 {
			return GeminiConfig{}, fmt.Errorf("invalid GEMINI_TIMEOUT value: %d", *seconds)
		}
		timeout = time.Duration(*seconds) * time.Second
	}

	return GeminiConfig{
		APIKey:  apiKey,
		Model:   getEnvOrDefault("GEMINI_MODEL", gemini.DefaultModel),
		BaseURL: getEnvOrDefault("GEMINI_BASE_URL", gemini.DefaultBaseURL),
		Timeout: timeout,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
