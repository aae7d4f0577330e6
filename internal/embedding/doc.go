// Package embedding turns question text into fixed-length vectors.
//
// It wraps an OpenAI-compatible inference service behind a small Provider
// interface. The exported Client offers exactly two operations the rest of
// the program needs: a one-time Load that verifies the configured model is
// servable (and records its vector dimension), and Encode, which maps one
// text to one []float32 vector.
//
// Configuration comes from EMBEDDING_* environment variables:
//
//	EMBEDDING_ENDPOINT              base URL of the inference service
//	                                (default http://localhost:11434/v1)
//	EMBEDDING_SERVICE_TOKEN         optional bearer token
//	EMBEDDING_HTTP_TIMEOUT_SECONDS  HTTP timeout (default 30)
//
// The model identifier itself is application configuration and is set on the
// Config by the caller.
package embedding
