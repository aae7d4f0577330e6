package qdrant

import (
	"context"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"github.com/fragdoc/fragdoc/internal/vectordb"
)

var _ vectordb.Service = (*Client)(nil)

// GetCollection retrieves metadata about a collection: status, stored point
// count, vector size and distance metric. The returned struct intentionally
// hides the SDK's nested protobuf types from the application layer.
func (c *Client) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	if c.api == nil {
		return nil, fmt.Errorf("qdrant: client not initialized")
	}
	if name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	info, err := c.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to get collection '%s': %w", name, err)
	}

	size, distance := extractVectorDetails(info)

	return &vectordb.Collection{
		Name:       name,
		Status:     info.GetStatus().String(),
		PointCount: derefUint64(info.PointsCount),
		VectorSize: size,
		Distance:   distance,
	}, nil
}

// PeekOne fetches a single stored item with its payload, without vectors.
// It returns nil when the collection is empty.
func (c *Client) PeekOne(ctx context.Context, collection string) (*vectordb.Item, error) {
	if collection == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	limit := uint32(1)
	points, err := c.api.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: collection,
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(false),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: scroll on '%s' failed: %w", collection, err)
	}

	// Older SDK releases hand back the bare point slice, the raw points
	// service wraps it in a ScrollResponse. firstScrolled folds both shapes
	// into "first item or none".
	return firstScrolled(points)
}

// Search performs a similarity search against req.Collection and returns at
// most req.TopK results, ordered by descending score as ranked by Qdrant.
func (c *Client) Search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
	if err := validateSearchInput(req.Collection, req.Vector, req.TopK); err != nil {
		return nil, err
	}

	limit := uint64(req.TopK)
	resp, err := c.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: req.Collection,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: search on '%s' failed: %w", req.Collection, err)
	}

	results := make([]vectordb.SearchResult, 0, len(resp))
	for _, pt := range resp {
		id, err := pointIDString(pt.GetId())
		if err != nil {
			return nil, err
		}
		results = append(results, vectordb.SearchResult{
			ID:      id,
			Score:   pt.GetScore(),
			Payload: payloadToMap(pt.GetPayload()),
		})
	}

	c.log.Zap.Debug("qdrant search completed",
		zap.String("collection", req.Collection),
		zap.Int("results", len(results)),
	)
	return results, nil
}

// firstScrolled normalizes the two possible scroll response shapes into the
// first retrieved item, or nil when the collection holds no points.
func firstScrolled(res any) (*vectordb.Item, error) {
	var points []*qdrant.RetrievedPoint

	switch v := res.(type) {
	case []*qdrant.RetrievedPoint:
		points = v
	case *qdrant.ScrollResponse:
		points = v.GetResult()
	default:
		return nil, fmt.Errorf("qdrant: unexpected scroll response type: %T", res)
	}

	if len(points) == 0 {
		return nil, nil
	}

	id, err := pointIDString(points[0].GetId())
	if err != nil {
		return nil, err
	}
	return &vectordb.Item{
		ID:      id,
		Payload: payloadToMap(points[0].GetPayload()),
	}, nil
}
