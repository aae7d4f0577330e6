package repl

import (
	"context"
	"fmt"
	"sort"

	"github.com/fragdoc/fragdoc/internal/vectordb"
)

// ask embeds the question, runs the similarity search and normalizes the
// result list: ordered by non-increasing score, at most TopK entries even if
// the backend over-delivers.
func (l *Loop) ask(ctx context.Context, question string) ([]vectordb.SearchResult, error) {
	vector, err := l.embedder.Encode(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	results, err := l.store.Search(ctx, vectordb.SearchRequest{
		Collection: l.collection,
		Vector:     vector,
		TopK:       l.topK,
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > l.topK {
		results = results[:l.topK]
	}
	return results, nil
}
