// Package config resolves the tool's settings from command-line flags and
// QDRANT_* environment variables into one immutable value.
//
// Precedence per field: explicit flag > environment variable > built-in
// default. The resolved Settings value is constructed once at startup and
// passed explicitly to every component; nothing reads the environment after
// Resolve returns.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	// DefaultPort is the Qdrant gRPC port used when neither a URL nor an
	// explicit port is configured.
	DefaultPort = 6333

	// DefaultTopK is the number of results returned per question.
	DefaultTopK = 5

	// DefaultEmbeddingModel mirrors the model the collections in the field
	// were typically ingested with.
	DefaultEmbeddingModel = "sentence-transformers/all-MiniLM-L6-v2"
)

// Settings holds the validated configuration for one program invocation.
type Settings struct {
	// Collection is the name of the Qdrant collection to query. Required.
	Collection string

	// URL is the full address of the Qdrant instance. When set, it takes
	// precedence over Host/Port.
	URL string

	// Host is the Qdrant hostname, used when URL is empty. Defaults to
	// "localhost" in the connection factory.
	Host string

	// Port is the Qdrant port, used when URL is empty.
	Port int

	// APIKey is the optional Qdrant authentication token.
	APIKey string

	// TopK is the maximum number of results per question.
	TopK int

	// TextKey names the payload field surfaced as the answer context.
	// Empty means the whole payload is shown.
	TextKey string

	// EmbeddingModel is the identifier of the embedding model used to
	// vectorize questions.
	EmbeddingModel string
}

// Flags carries the raw command-line values. Zero values mean "not set".
type Flags struct {
	Collection     string
	URL            string
	Host           string
	Port           int
	APIKey         string
	TopK           int
	TextKey        string
	EmbeddingModel string
}

// env mirrors the QDRANT_* environment variables used as fallback when the
// corresponding flag is absent.
type env struct {
	URL            string `envconfig:"URL"`
	Host           string `envconfig:"HOST"`
	Port           int    `envconfig:"PORT"`
	APIKey         string `envconfig:"API_KEY"`
	CollectionName string `envconfig:"COLLECTION_NAME"`
	TextKey        string `envconfig:"TEXT_KEY"`
	TopK           int    `envconfig:"TOP_K"`
	EmbeddingModel string `envconfig:"EMBEDDING_MODEL"`
}

// Resolve merges flags and environment into a validated Settings value.
//
// It fails when the collection name is missing from both sources, or when a
// numeric environment variable does not parse as an integer.
func Resolve(fl Flags) (*Settings, error) {
	var e env
	if err := envconfig.Process("qdrant", &e); err != nil {
		return nil, fmt.Errorf("invalid QDRANT_* environment: %w", err)
	}

	s := &Settings{
		Collection:     pickString(fl.Collection, e.CollectionName, ""),
		URL:            pickString(fl.URL, e.URL, ""),
		Host:           pickString(fl.Host, e.Host, ""),
		Port:           pickInt(fl.Port, e.Port, DefaultPort),
		APIKey:         pickString(fl.APIKey, e.APIKey, ""),
		TopK:           pickInt(fl.TopK, e.TopK, DefaultTopK),
		TextKey:        pickString(fl.TextKey, e.TextKey, ""),
		EmbeddingModel: pickString(fl.EmbeddingModel, e.EmbeddingModel, DefaultEmbeddingModel),
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.Collection == "" {
		return fmt.Errorf("eine Collection muss angegeben werden (Argument --collection oder Umgebungsvariable QDRANT_COLLECTION_NAME)")
	}
	if s.TopK <= 0 {
		return fmt.Errorf("top-k must be a positive integer, got %d", s.TopK)
	}
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in range 1-65535, got %d", s.Port)
	}
	return nil
}

func pickString(flag, env, def string) string {
	if flag != "" {
		return flag
	}
	if env != "" {
		return env
	}
	return def
}

func pickInt(flag, env, def int) int {
	if flag != 0 {
		return flag
	}
	if env != 0 {
		return env
	}
	return def
}
