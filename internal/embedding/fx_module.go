package embedding

import (
	"context"

	"go.uber.org/fx"

	"github.com/fragdoc/fragdoc/internal/logger"
)

// FXModule wires the embedding system into Fx.
//
// It provides:
//   - *Client                (NewClient)
//   - Lifecycle hook         (RegisterEmbeddingLifecycle)
//
// Dependencies required by this module:
//   - An embedding.Config instance must be available in the container.
var FXModule = fx.Module(
	"embedding",

	fx.Provide(
		NewClient, // -> *Client
	),

	fx.Invoke(RegisterEmbeddingLifecycle),
)

// Params defines dependencies needed to construct the embedding client.
type Params struct {
	fx.In

	Config *Config
	Log    *logger.Logger `optional:"true"`
}

// RegisterEmbeddingLifecycle ensures that the Client (and its provider)
// are properly cleaned up on application shutdown.
func RegisterEmbeddingLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
