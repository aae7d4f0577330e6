package embedding

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fragdoc/fragdoc/internal/logger"
)

// Client is the public entrypoint for computing question embeddings.
//
// It hides all provider details (inference endpoints, HTTP, etc.)
// from the application layer.
type Client struct {
	provider Provider
	cfg      *Config
	log      *logger.Logger

	// dim is the vector dimension observed during Load. Zero until loaded.
	dim int
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference provider.
// Application code should depend on *Client, not on Provider.
func NewClient(p Params) (*Client, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	prov, err := newInferenceProvider(p.Config)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	log := p.Log
	if log == nil {
		log = logger.Nop()
	}

	return &Client{provider: prov, cfg: p.Config, log: log}, nil
}

// Load verifies that the configured model is servable by issuing a probe
// request and records the vector dimension. It is a one-time, possibly slow
// operation; remote providers may fetch the model on first use.
func (c *Client) Load(ctx context.Context) error {
	vecs, err := c.provider.Embed(ctx, c.cfg.Model, "warmup")
	if err != nil {
		return fmt.Errorf("embedding: model '%s' not available: %w", c.cfg.Model, err)
	}
	if len(vecs) == 0 || len(vecs[0]) == 0 {
		return fmt.Errorf("embedding: model '%s' returned an empty vector", c.cfg.Model)
	}

	c.dim = len(vecs[0])
	c.log.Zap.Info("embedding model loaded",
		zap.String("model", c.cfg.Model),
		zap.Int("dimension", c.dim),
	)
	return nil
}

// Encode converts a single text into its embedding vector.
func (c *Client) Encode(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("embedding: text cannot be empty")
	}

	vecs, err := c.provider.Embed(ctx, c.cfg.Model, text)
	if err != nil {
		return nil, err
	}
	if len(vecs) == 0 {
		return nil, fmt.Errorf("embedding: provider returned no vectors")
	}
	return vecs[0], nil
}

// Dimension returns the vector dimension observed during Load,
// or zero if the model has not been loaded yet.
func (c *Client) Dimension() int {
	return c.dim
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Close allows the client to release any internal resources used by the provider.
// Currently this is a no-op unless the provider implements Close().
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
