package index

import (
	"context"

	"github.com/qdrant/go-client/qdrant"

	errx "github.com/Shoply-rag-poc-v1/server/internal/core/error"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// Config holds connection and collection settings for the Qdrant index.
type Config struct {
	Host        string `split_words:"true" default:"localhost"`
	Port        int    `split_words:"true" default:"6334"`
	APIKey      string `split_words:"true"`
	UseTLS      bool   `split_words:"true" default:"false"`
	Collection  string `split_words:"true" default:"Amazon-items-collection-01-hybrid-search"`
	DenseVector string `split_words:"true" default:"text-embedding-3-small"`
	BM25Vector  string `envconfig:"BM25_VECTOR" default:"bm25"`
	IDField     string `envconfig:"ID_FIELD" default:"parent_asin"`
	VectorSize  int    `split_words:"true" default:"1536"`
}

// QdrantIndex implements Client against a Qdrant collection over gRPC.
// A single instance is safe for concurrent use; the underlying gRPC
// connection is shared across requests.
type QdrantIndex struct {
	client *qdrant.Client
	cfg    Config
}

// New dials the Qdrant server and returns an index client.
func (c *Config) New() (*QdrantIndex, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   c.Host,
		Port:   c.Port,
		APIKey: c.APIKey,
		UseTLS: c.UseTLS,
	})
	if err != nil {
		logx.Error().Err(err).Str("host", c.Host).Int("port", c.Port).Msg("failed to create qdrant client")
		return nil, errx.WrapRetrieval(err)
	}
	return &QdrantIndex{client: client, cfg: *c}, nil
}

// Close releases the underlying gRPC connection.
func (q *QdrantIndex) Close() error {
	return q.client.Close()
}

func (q *QdrantIndex) DenseSearch(ctx context.Context, vector []float32, limit uint64) ([]Hit, error) {
	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.cfg.Collection,
		Query:          qdrant.NewQueryDense(vector),
		Using:          qdrant.PtrOf(q.cfg.DenseVector),
		Limit:          qdrant.PtrOf(limit),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		logx.Error().Err(err).Str("collection", q.cfg.Collection).Msg("dense search failed")
		return nil, errx.WrapRetrieval(err)
	}
	return q.toHits(points), nil
}

func (q *QdrantIndex) LexicalSearch(ctx context.Context, text string, limit uint64) ([]Hit, error) {
	indices, values := LexicalVector(text)
	if len(indices) == 0 {
		return nil, nil
	}
	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.cfg.Collection,
		Query:          qdrant.NewQuerySparse(indices, values),
		Using:          qdrant.PtrOf(q.cfg.BM25Vector),
		Limit:          qdrant.PtrOf(limit),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		logx.Error().Err(err).Str("collection", q.cfg.Collection).Msg("lexical search failed")
		return nil, errx.WrapRetrieval(err)
	}
	return q.toHits(points), nil
}

// Lookup runs a zero-vector query filtered to the exact item id, limit 1.
func (q *QdrantIndex) Lookup(ctx context.Context, id string) (*Payload, error) {
	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.cfg.Collection,
		Query:          qdrant.NewQueryDense(make([]float32, q.cfg.VectorSize)),
		Using:          qdrant.PtrOf(q.cfg.DenseVector),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(q.cfg.IDField, id),
			},
		},
		Limit:       qdrant.PtrOf(uint64(1)),
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		logx.Error().Err(err).Str("id", id).Msg("point lookup failed")
		return nil, errx.WrapResolution(err)
	}
	if len(points) == 0 {
		return nil, nil
	}
	payload := points[0].GetPayload()
	out := &Payload{
		Image:       stringValue(payload["image"]),
		Description: stringValue(payload["description"]),
	}
	if v, ok := payload["price"]; ok {
		if price, isNum := numberValue(v); isNum {
			out.Price = &price
		}
	}
	return out, nil
}

func (q *QdrantIndex) toHits(points []*qdrant.ScoredPoint) []Hit {
	hits := make([]Hit, 0, len(points))
	for _, p := range points {
		payload := p.GetPayload()
		rating, _ := numberValue(payload["average_rating"])
		hits = append(hits, Hit{
			ID:          stringValue(payload[q.cfg.IDField]),
			Description: stringValue(payload["description"]),
			Rating:      rating,
			Score:       p.GetScore(),
		})
	}
	return hits
}

func stringValue(v *qdrant.Value) string {
	if v == nil {
		return ""
	}
	return v.GetStringValue()
}

func numberValue(v *qdrant.Value) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch k := v.GetKind().(type) {
	case *qdrant.Value_DoubleValue:
		return k.DoubleValue, true
	case *qdrant.Value_IntegerValue:
		return float64(k.IntegerValue), true
	default:
		return 0, false
	}
}
