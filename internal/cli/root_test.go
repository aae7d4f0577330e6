package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragdoc/fragdoc/internal/config"
)

// TestExecute_MissingCollection covers the fatal configuration path: with no
// flag and no environment variable for the collection, the command fails
// before any network activity.
func TestExecute_MissingCollection(t *testing.T) {
	for _, key := range []string{
		"QDRANT_URL", "QDRANT_HOST", "QDRANT_PORT", "QDRANT_API_KEY",
		"QDRANT_COLLECTION_NAME", "QDRANT_TEXT_KEY", "QDRANT_TOP_K",
		"QDRANT_EMBEDDING_MODEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	flagValues = config.Flags{}

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{})

	err := Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QDRANT_COLLECTION_NAME")
}

func TestExecute_NonIntegerPortFlag(t *testing.T) {
	flagValues = config.Flags{}

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"--port", "abc"})

	err := Execute()
	require.Error(t, err)
}
