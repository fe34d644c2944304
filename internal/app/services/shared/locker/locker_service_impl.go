package locker

import (
	"context"
	"fmt"
	"time"

	"shiftcal-service/internal/app/contracts"
	"shiftcal-service/internal/pkg/exceptions"
	"shiftcal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type lockService struct {
	redisRepo contracts.RedisRepository
	log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: repo,
		log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	token := utils.GenerateLockToken()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, token, expiration)
	if err != nil {
		s.log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String("key", key),
			zap.Error(err),
		)
		return false, "", err
	}
	if !acquired {
		return false, "", nil
	}
	return true, token, nil
}

func (s *lockService) Unlock(ctx context.Context, key, token string) error {
	storedVal, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return err
	}
	if storedVal == "" {
		// Lock already expired; nothing to release.
		return nil
	}

	// The repository stores values JSON-encoded.
	expectedValue := fmt.Sprintf("%q", token)
	if storedVal != expectedValue {
		err := exceptions.ErrRedisUnlock(fmt.Errorf("lock not owned by this client"))
		s.log.Error("lockService.Unlock lock ownership mismatch",
			zap.String("key", key),
			zap.Error(err),
		)
		return err
	}

	return s.redisRepo.Delete(ctx, key)
}
