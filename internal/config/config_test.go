package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearQdrantEnv unsets every QDRANT_* variable the resolver reads so tests
// are independent of the host environment. t.Setenv registers the restore,
// the explicit Unsetenv makes the variable truly absent (an empty-but-set
// integer variable would be a parse error).
func clearQdrantEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"QDRANT_URL", "QDRANT_HOST", "QDRANT_PORT", "QDRANT_API_KEY",
		"QDRANT_COLLECTION_NAME", "QDRANT_TEXT_KEY", "QDRANT_TOP_K",
		"QDRANT_EMBEDDING_MODEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestResolve_MissingCollection(t *testing.T) {
	clearQdrantEnv(t)

	_, err := Resolve(Flags{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Collection")
	assert.Contains(t, err.Error(), "QDRANT_COLLECTION_NAME")
}

func TestResolve_Defaults(t *testing.T) {
	clearQdrantEnv(t)

	s, err := Resolve(Flags{Collection: "docs"})
	require.NoError(t, err)

	assert.Equal(t, "docs", s.Collection)
	assert.Equal(t, DefaultPort, s.Port)
	assert.Equal(t, DefaultTopK, s.TopK)
	assert.Equal(t, DefaultEmbeddingModel, s.EmbeddingModel)
	assert.Empty(t, s.URL)
	assert.Empty(t, s.Host)
	assert.Empty(t, s.TextKey)
}

func TestResolve_FlagBeatsEnvironment(t *testing.T) {
	clearQdrantEnv(t)
	t.Setenv("QDRANT_COLLECTION_NAME", "env-collection")
	t.Setenv("QDRANT_TOP_K", "9")
	t.Setenv("QDRANT_HOST", "env-host")

	s, err := Resolve(Flags{Collection: "flag-collection", TopK: 3})
	require.NoError(t, err)

	assert.Equal(t, "flag-collection", s.Collection)
	assert.Equal(t, 3, s.TopK)
	assert.Equal(t, "env-host", s.Host, "env value applies where the flag is unset")
}

func TestResolve_EnvironmentFallback(t *testing.T) {
	clearQdrantEnv(t)
	t.Setenv("QDRANT_COLLECTION_NAME", "docs")
	t.Setenv("QDRANT_URL", "https://xyz.qdrant.tech")
	t.Setenv("QDRANT_API_KEY", "secret")
	t.Setenv("QDRANT_PORT", "7000")
	t.Setenv("QDRANT_TEXT_KEY", "text")
	t.Setenv("QDRANT_EMBEDDING_MODEL", "custom-model")

	s, err := Resolve(Flags{})
	require.NoError(t, err)

	assert.Equal(t, "docs", s.Collection)
	assert.Equal(t, "https://xyz.qdrant.tech", s.URL)
	assert.Equal(t, "secret", s.APIKey)
	assert.Equal(t, 7000, s.Port)
	assert.Equal(t, "text", s.TextKey)
	assert.Equal(t, "custom-model", s.EmbeddingModel)
}

func TestResolve_NonIntegerPortIsFatal(t *testing.T) {
	clearQdrantEnv(t)
	t.Setenv("QDRANT_COLLECTION_NAME", "docs")
	t.Setenv("QDRANT_PORT", "not-a-number")

	_, err := Resolve(Flags{})
	require.Error(t, err)
}

func TestResolve_NonIntegerTopKIsFatal(t *testing.T) {
	clearQdrantEnv(t)
	t.Setenv("QDRANT_COLLECTION_NAME", "docs")
	t.Setenv("QDRANT_TOP_K", "five")

	_, err := Resolve(Flags{})
	require.Error(t, err)
}

func TestResolve_NegativeTopK(t *testing.T) {
	clearQdrantEnv(t)

	_, err := Resolve(Flags{Collection: "docs", TopK: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top-k")
}

func TestResolve_PortOutOfRange(t *testing.T) {
	clearQdrantEnv(t)

	_, err := Resolve(Flags{Collection: "docs", Port: 70000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}
