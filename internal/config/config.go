package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the process reads at startup. Values come from
// an optional agroclima.yaml and from AGROCLIMA_* environment variables
// (env wins, dots become underscores: AGROCLIMA_LLM_API_KEY → llm.api_key).
type Config struct {
	Port string

	LLM     LLMConfig
	GCP     GCPConfig
	Session SessionConfig
	CORS    CORSConfig
}

// LLMConfig selects and configures the model gateway.
type LLMConfig struct {
	Provider string // "openai", "gemini" or "mock"
	APIKey   string
	Model    string
	BaseURL  string // optional, for OpenAI-compatible endpoints
}

// GCPConfig is only consulted by the gemini provider.
type GCPConfig struct {
	Project  string
	Location string
}

// SessionConfig controls the session cookie and history lifetime.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration once. A missing config file is fine; any other
// read error is not.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("agroclima")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("AGROCLIMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8000")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("gcp.location", "us-central1")
	v.SetDefault("session.secret", "cambia-esta-clave-super-secreta")
	v.SetDefault("session.ttl", 6*time.Hour)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port: v.GetString("port"),
		LLM: LLMConfig{
			Provider: v.GetString("llm.provider"),
			APIKey:   v.GetString("llm.api_key"),
			Model:    v.GetString("llm.model"),
			BaseURL:  v.GetString("llm.base_url"),
		},
		GCP: GCPConfig{
			Project:  v.GetString("gcp.project"),
			Location: v.GetString("gcp.location"),
		},
		Session: SessionConfig{
			Secret: v.GetString("session.secret"),
			TTL:    v.GetDuration("session.ttl"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
		},
	}

	if cfg.LLM.Provider == "gemini" && cfg.GCP.Project == "" {
		return nil, fmt.Errorf("gcp.project must be set for the gemini provider")
	}

	return cfg, nil
}
