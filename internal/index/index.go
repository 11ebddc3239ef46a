package index

import "context"

// Hit is one ranked candidate returned by a search query.
type Hit struct {
	ID          string
	Description string
	Rating      float64
	Score       float32
}

// Payload is the display payload of a single catalog item.
type Payload struct {
	Image       string   `json:"image"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
}

// Client is the query contract against the product vector index. The engine
// behind it is a black box; implementations translate these three shapes
// into whatever the backing store understands.
type Client interface {
	// DenseSearch returns the top candidates by dense vector similarity.
	DenseSearch(ctx context.Context, vector []float32, limit uint64) ([]Hit, error)

	// LexicalSearch returns the top candidates by lexical (BM25) relevance.
	LexicalSearch(ctx context.Context, text string, limit uint64) ([]Hit, error)

	// Lookup fetches the display payload of a single item by exact id.
	// A missing item returns (nil, nil), not an error.
	Lookup(ctx context.Context, id string) (*Payload, error)
}
