package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmbeddingServer fakes an OpenAI-compatible /embeddings endpoint that
// returns one fixed vector per input text.
func newEmbeddingServer(t *testing.T, vector []float32) (*httptest.Server, *[]string) {
	t.Helper()

	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Model string   `json:"model"`
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		requests = append(requests, body.Model)

		type datum struct {
			Embedding []float32 `json:"embedding"`
		}
		data := make([]datum, len(body.Input))
		for i := range body.Input {
			data[i] = datum{Embedding: vector}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	client, err := NewClient(Params{Config: &Config{
		Endpoint:     endpoint,
		Model:        "test-model",
		HTTPTimeoutS: 5,
	}})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresModel(t *testing.T) {
	_, err := NewClient(Params{Config: &Config{Endpoint: DefaultEndpoint, HTTPTimeoutS: 5}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model")
}

func TestNewClient_RequiresEndpoint(t *testing.T) {
	_, err := NewClient(Params{Config: &Config{Model: "test-model", HTTPTimeoutS: 5}})
	require.Error(t, err)
}

func TestEncode(t *testing.T) {
	srv, models := newEmbeddingServer(t, []float32{0.1, 0.2, 0.3})
	client := newTestClient(t, srv.URL)

	vec, err := client.Encode(context.Background(), "Was ist X?")
	require.NoError(t, err)

	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
	assert.Equal(t, []string{"test-model"}, *models)
}

func TestEncode_EmptyText(t *testing.T) {
	srv, _ := newEmbeddingServer(t, []float32{0.1})
	client := newTestClient(t, srv.URL)

	_, err := client.Encode(context.Background(), "")
	require.Error(t, err)
}

func TestLoad_RecordsDimension(t *testing.T) {
	srv, _ := newEmbeddingServer(t, []float32{0.1, 0.2, 0.3, 0.4})
	client := newTestClient(t, srv.URL)

	assert.Equal(t, 0, client.Dimension())
	require.NoError(t, client.Load(context.Background()))
	assert.Equal(t, 4, client.Dimension())
}

func TestLoad_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)
	err := client.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test-model")
	assert.Contains(t, err.Error(), "http 404")
}

func TestEncode_BearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float32{1}}},
		})
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Params{Config: &Config{
		Endpoint:     srv.URL,
		Model:        "test-model",
		ServiceToken: "s3cret",
		HTTPTimeoutS: 5,
	}})
	require.NoError(t, err)

	_, err = client.Encode(context.Background(), "frage")
	require.NoError(t, err)
	assert.Equal(t, "Bearer s3cret", auth)
}

func TestEncode_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv.URL)
	_, err := client.Encode(context.Background(), "frage")
	require.Error(t, err)
}

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"EMBEDDING_ENDPOINT", "EMBEDDING_SERVICE_TOKEN", "EMBEDDING_HTTP_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("EMBEDDING_HTTP_TIMEOUT_SECONDS", "45")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 45, cfg.HTTPTimeoutS)
}
