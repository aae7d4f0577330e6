package embedding

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// DefaultEndpoint points at a local Ollama-style server exposing the
// OpenAI-compatible API. The provider appends /embeddings itself, so only
// the base URL is configured here.
const DefaultEndpoint = "http://localhost:11434/v1"

type Config struct {
	// Endpoint is the base URL of the OpenAI-compatible inference service
	// (no /embeddings appended).
	Endpoint string `envconfig:"ENDPOINT"`

	// ServiceToken is the optional bearer token for the inference service.
	ServiceToken string `envconfig:"SERVICE_TOKEN"`

	// HTTPTimeoutS is the HTTP timeout in seconds (default 30).
	HTTPTimeoutS int `envconfig:"HTTP_TIMEOUT_SECONDS"`

	// Model is the identifier of the embedding model to load. Set by the
	// caller, not read from EMBEDDING_* variables.
	Model string `envconfig:"-"`
}

// NewConfig reads the EMBEDDING_* environment variables.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Endpoint:     DefaultEndpoint,
		HTTPTimeoutS: 30,
	}
	if err := envconfig.Process("embedding", cfg); err != nil {
		return nil, fmt.Errorf("embedding: invalid EMBEDDING_* environment: %w", err)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.HTTPTimeoutS <= 0 {
		cfg.HTTPTimeoutS = 30
	}
	return cfg, nil
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: model is required")
	}
	return nil
}
