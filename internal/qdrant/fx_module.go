package qdrant

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/fragdoc/fragdoc/internal/logger"
)

// FXModule defines the Fx module for the Qdrant client.
//
// It provides the client factory and registers its lifecycle hook.
//
// Usage:
//
//	app := fx.New(
//	    qdrant.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
//   - A qdrant.Config instance must be available in the container.
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// Params defines dependencies needed to construct the Qdrant client.
type Params struct {
	fx.In

	Config *Config
	Log    *logger.Logger `optional:"true"`
}

// RegisterQdrantLifecycle handles shutdown of the Qdrant client.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *Client) {
	var once sync.Once

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			var err error
			once.Do(func() {
				err = client.Close()
			})
			return err
		},
	})
}
