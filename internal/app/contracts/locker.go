package contracts

import (
	"context"
	"time"
)

// LockerService provides a best-effort distributed lock, used to elect a
// single prefetch worker across replicas.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, key, token string) error
}
