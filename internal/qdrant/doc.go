// Package qdrant is a thin read-side wrapper around the official Qdrant Go
// client.
//
// It covers exactly the three operations the tool performs against a
// pre-populated collection:
//
//   - GetCollection: collection metadata (status, point count, vector size)
//   - PeekOne: one stored item with payload, to show available fields
//   - Search: vector similarity search with payload
//
// All results are converted into the backend-agnostic types of the
// internal/vectordb package; *Client satisfies vectordb.Service.
//
// # Connection target
//
// The client connects either via a full URL (https enables TLS) or via a
// host/port pair. When both are configured the URL wins. Connectivity is
// validated once at construction with a bounded health check; there are no
// retries; an unreachable instance fails construction.
//
// # Scroll response shapes
//
// The peek operation tolerates two response shapes: the bare point slice
// returned by the SDK's Scroll helper and the ScrollResponse wrapper of the
// raw points service. Both normalize to the same "first item or none"
// result, see firstScrolled.
package qdrant
