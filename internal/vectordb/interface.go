package vectordb

import "context"

// Service is the read-side interface for a vector search backend.
// It provides a backend-agnostic abstraction so the interactive layer can be
// tested against a mock instead of a live instance.
//
// Example mock:
//
//	type fakeBackend struct{}
//
//	func (f *fakeBackend) Search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
//	    return []vectordb.SearchResult{{ID: "doc-1", Score: 0.95, Payload: map[string]any{"text": "..."}}}, nil
//	}
type Service interface {
	// Search performs a similarity search and returns results ordered by
	// descending score, at most req.TopK of them.
	Search(ctx context.Context, req SearchRequest) ([]SearchResult, error)

	// PeekOne fetches a single stored item with its payload, or nil if the
	// collection is empty.
	PeekOne(ctx context.Context, collection string) (*Item, error)

	// GetCollection retrieves metadata about a collection.
	GetCollection(ctx context.Context, name string) (*Collection, error)
}
