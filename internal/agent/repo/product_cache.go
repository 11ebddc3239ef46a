package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Shoply-rag-poc-v1/server/internal/index"
	"github.com/Shoply-rag-poc-v1/server/internal/retrieval"
	logx "github.com/Shoply-rag-poc-v1/server/pkg/logger"
)

// RedisProductCache is a best-effort read-through cache of resolved product
// payloads. Failures degrade to index lookups; they are never fatal.
type RedisProductCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisProductCache(rdb redis.Cmdable, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{rdb: rdb, ttl: ttl}
}

func (r *RedisProductCache) cacheKey(id string) string {
	return fmt.Sprintf("product:%s:payload", id)
}

func (r *RedisProductCache) Get(ctx context.Context, id string) (*index.Payload, bool) {
	key := r.cacheKey(id)
	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logx.Warn().Err(err).Str("key", key).Msg("failed to read product payload from redis")
		}
		return nil, false
	}

	var payload index.Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("failed to unmarshal cached product payload")
		return nil, false
	}
	return &payload, true
}

func (r *RedisProductCache) Set(ctx context.Context, id string, payload *index.Payload) {
	if payload == nil {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		logx.Warn().Err(err).Str("id", id).Msg("failed to marshal product payload")
		return
	}
	key := r.cacheKey(id)
	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("failed to write product payload to redis")
	}
}

var _ retrieval.PayloadCache = (*RedisProductCache)(nil)
