package cache

import (
	"context"
	"sync"
	"time"

	"shiftcal-service/internal/app/contracts"

	"golang.org/x/sync/singleflight"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// memoryCacheStore is the in-process CacheStore. Entries are immutable
// once written and lazily overwritten after expiry; concurrent misses on
// the same key share a single compute via singleflight.
type memoryCacheStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	group   singleflight.Group
	now     func() time.Time
}

func NewMemoryCacheStore() contracts.CacheStore {
	return &memoryCacheStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *memoryCacheStore) GetOrCompute(ctx context.Context, key string, expiresAt time.Time, compute func(context.Context) ([]byte, error)) ([]byte, error) {
	if data, ok := s.lookup(key); ok {
		return data, nil
	}

	value, err, _ := s.group.Do(key, func() (interface{}, error) {
		// A concurrent flight may have stored the entry between the
		// miss above and acquiring the flight.
		if data, ok := s.lookup(key); ok {
			return data, nil
		}

		data, err := compute(ctx)
		if err != nil {
			// Failures are never cached; the next call retries.
			return nil, err
		}

		s.mu.Lock()
		s.entries[key] = memoryEntry{data: data, expiresAt: expiresAt}
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]byte), nil
}

func (s *memoryCacheStore) Invalidate(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func (s *memoryCacheStore) lookup(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || !s.now().Before(entry.expiresAt) {
		return nil, false
	}
	return entry.data, true
}
