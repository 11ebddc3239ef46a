package retrieval

import (
	"context"

	"github.com/Shoply-rag-poc-v1/server/internal/index"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// prefetchLimit is how many candidates each side of the hybrid query fetches
// before fusion.
const prefetchLimit = 20

// RetrievedItem is one ranked candidate after fusion. Ephemeral; produced per
// retrieval call and never persisted.
type RetrievedItem struct {
	ID          string
	Description string
	Rating      float64
	Score       float64
}

// Retriever answers queries with a hybrid dense + lexical search fused by RRF.
type Retriever struct {
	index    index.Client
	embedder Embedder
}

func NewRetriever(idx index.Client, embedder Embedder) *Retriever {
	return &Retriever{index: idx, embedder: embedder}
}

// Retrieve returns the top k fused candidates for the query. Transport
// failures from the embedding service or the index propagate unretried.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]RetrievedItem, error) {
	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	dense, err := r.index.DenseSearch(ctx, vector, prefetchLimit)
	if err != nil {
		return nil, err
	}
	lexical, err := r.index.LexicalSearch(ctx, query, prefetchLimit)
	if err != nil {
		return nil, err
	}

	fused := rrfFuse([][]index.Hit{dense, lexical}, rrfConstant)
	if k > 0 && len(fused) > k {
		fused = fused[:k]
	}

	items := make([]RetrievedItem, 0, len(fused))
	for _, hit := range fused {
		items = append(items, RetrievedItem{
			ID:          hit.ID,
			Description: hit.Description,
			Rating:      hit.Rating,
			Score:       float64(hit.Score),
		})
	}

	logx.Debug().
		Str("query", query).
		Int("dense", len(dense)).
		Int("lexical", len(lexical)).
		Int("returned", len(items)).
		Msg("Hybrid retrieval complete")

	return items, nil
}
