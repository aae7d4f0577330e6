package embedding

import "context"

// Provider contract
type Provider interface {
	// Embed generates embeddings for the given texts using the specified model.
	Embed(ctx context.Context, model string, texts ...string) ([][]float32, error)
}
