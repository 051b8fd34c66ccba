package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/cerahati/backend/internal/cache"
	"github.com/cerahati/backend/pkg/logger"
	"github.com/cerahati/backend/pkg/metrics"
	"github.com/cerahati/backend/pkg/response"
)

// Resolved carries a read-through result together with where it came from.
type Resolved[T any] struct {
	Source string
	Data   T
}

// readThrough resolves a key against the cache and falls back to the loader on
// a miss. Loader results are cached with the given TTL; loader errors are
// returned as-is and never cached, so a 404 today does not mask a row inserted
// tomorrow. A corrupt cached value is treated as a miss.
func readThrough[T any](ctx context.Context, store cache.Store, kind, key string, ttl time.Duration, load func(context.Context) (T, error)) (*Resolved[T], error) {
	ctx = ensuredContext(ctx)
	log := logger.WithModule("cache")

	raw, found, err := store.Get(ctx, key)
	if err != nil {
		log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	if found && err == nil {
		var data T
		if err := json.Unmarshal(raw, &data); err == nil {
			metrics.CacheReads.WithLabelValues(kind, response.SourceCache).Inc()
			return &Resolved[T]{Source: response.SourceCache, Data: data}, nil
		}
		log.Warn("cache entry is not valid JSON, treating as miss", zap.String("key", key))
	}

	data, err := load(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		log.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
	} else if err := store.Set(ctx, key, encoded, ttl); err != nil {
		log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}

	metrics.CacheReads.WithLabelValues(kind, response.SourceDatabase).Inc()
	return &Resolved[T]{Source: response.SourceDatabase, Data: data}, nil
}
