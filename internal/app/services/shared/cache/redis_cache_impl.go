package cache

import (
	"context"
	"time"

	"shiftcal-service/internal/app/contracts"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// redisCacheStore backs the CacheStore with redis so that multiple
// replicas share one cache. Concurrent misses across replicas may compute
// redundantly; the entry written last wins, which is harmless because a
// computed payload for a given key and TTL window is equivalent.
type redisCacheStore struct {
	redisRepo contracts.RedisRepository
	log       *zap.Logger
}

func NewRedisCacheStore(redisRepo contracts.RedisRepository, log *zap.Logger) contracts.CacheStore {
	return &redisCacheStore{redisRepo: redisRepo, log: log}
}

func (s *redisCacheStore) GetOrCompute(ctx context.Context, key string, expiresAt time.Time, compute func(context.Context) ([]byte, error)) ([]byte, error) {
	data, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data != "" {
		return []byte(data), nil
	}

	payload, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	if ttl := time.Until(expiresAt); ttl > 0 {
		// Best effort: a failed write only costs a recompute later.
		if err := s.redisRepo.Set(ctx, key, json.RawMessage(payload), ttl); err != nil {
			s.log.Warn("redisCacheStore.GetOrCompute failed to store entry", zap.String("key", key), zap.Error(err))
		}
	}
	return payload, nil
}

func (s *redisCacheStore) Invalidate(ctx context.Context, key string) error {
	return s.redisRepo.Delete(ctx, key)
}
