package retrieval

import (
	"context"

	"github.com/Shoply-rag-poc-v1/server/internal/agent/model"
	"github.com/Shoply-rag-poc-v1/server/internal/index"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// PayloadCache is an optional read-through cache in front of point lookups.
// Implementations are best-effort: a miss and a failure look the same.
type PayloadCache interface {
	Get(ctx context.Context, id string) (*index.Payload, bool)
	Set(ctx context.Context, id string, payload *index.Payload)
}

// Resolver maps citations back into display-ready product records.
type Resolver struct {
	index index.Client
	cache PayloadCache
}

// NewResolver builds a resolver; cache may be nil.
func NewResolver(idx index.Client, cache PayloadCache) *Resolver {
	return &Resolver{index: idx, cache: cache}
}

// Resolve looks up each citation and returns display records in citation
// order, duplicates preserved. Citations whose payload carries no image are
// dropped silently; items without imagery are not shown. Lookup transport
// failures propagate.
func (r *Resolver) Resolve(ctx context.Context, refs []model.Citation) ([]model.DisplayContext, error) {
	out := make([]model.DisplayContext, 0, len(refs))
	for _, ref := range refs {
		payload, err := r.lookup(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		if payload == nil || payload.Image == "" {
			logx.Debug().Str("id", ref.ID).Msg("Citation has no image payload - skipping")
			continue
		}
		out = append(out, model.DisplayContext{
			ImageURL:    payload.Image,
			Price:       payload.Price,
			Description: ref.Description,
		})
	}
	return out, nil
}

func (r *Resolver) lookup(ctx context.Context, id string) (*index.Payload, error) {
	if r.cache != nil {
		if payload, ok := r.cache.Get(ctx, id); ok {
			return payload, nil
		}
	}
	payload, err := r.index.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.cache != nil && payload != nil {
		r.cache.Set(ctx, id, payload)
	}
	return payload, nil
}
