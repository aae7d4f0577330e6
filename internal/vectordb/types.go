package vectordb

// SearchRequest represents a single similarity search query.
type SearchRequest struct {
	// Collection is the target collection to search in
	Collection string `json:"collection"`

	// Vector is the query embedding to find similar points for
	Vector []float32 `json:"vector"`

	// TopK is the maximum number of results to return
	TopK int `json:"topK"`
}

// SearchResult represents a single search result with its similarity score.
// This is backend-agnostic: the payload is converted to map[string]any.
type SearchResult struct {
	// ID is the unique identifier of the matched point
	ID string `json:"id"`

	// Score is the similarity score (higher = more similar for cosine)
	Score float32 `json:"score"`

	// Payload contains the metadata stored with the vector
	Payload map[string]any `json:"payload"`
}

// Item is a stored point retrieved without scoring, e.g. via a peek/scroll.
type Item struct {
	// ID is the unique identifier of the point
	ID string `json:"id"`

	// Payload contains the metadata stored with the vector
	Payload map[string]any `json:"payload"`
}

// Collection contains metadata about a vector collection.
type Collection struct {
	// Name is the unique identifier of the collection
	Name string `json:"name"`

	// Status indicates the operational state (e.g., "Green", "Yellow")
	Status string `json:"status"`

	// VectorSize is the dimension of vectors in this collection
	VectorSize int `json:"vectorSize"`

	// Distance is the similarity metric (e.g., "Cosine", "Dot", "Euclid")
	Distance string `json:"distance"`

	// PointCount is the number of stored points
	PointCount uint64 `json:"pointCount"`
}
