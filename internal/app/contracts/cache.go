package contracts

import (
	"context"
	"time"
)

// CacheStore is a get-or-compute cache with per-entry absolute expiry. It
// is the only shared mutable state in the roster core and is always passed
// in explicitly; there is no package-level instance.
//
// Entries are opaque byte payloads so that in-memory and redis-backed
// implementations behave identically; callers serialize with JSON.
type CacheStore interface {
	// GetOrCompute returns the non-expired entry for key, or invokes
	// compute, stores its result with the given expiry and returns it.
	// A compute failure is never stored; the next call retries.
	GetOrCompute(ctx context.Context, key string, expiresAt time.Time, compute func(context.Context) ([]byte, error)) ([]byte, error)

	// Invalidate removes the entry for key, if any. Part of the external
	// refresh contract.
	Invalidate(ctx context.Context, key string) error
}
