package roster

import (
	"context"
	"strings"
	"time"

	"shiftcal-service/internal/app/config"
	"shiftcal-service/internal/app/contracts"
	"shiftcal-service/internal/app/models"
	"shiftcal-service/internal/pkg/constvars"
	"shiftcal-service/internal/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// leaderLockKey ensures a single prefetch leader across replicas.
const leaderLockKey = "rosterprefetch:leader"

// Worker periodically rebuilds the current week's roster for the
// configured subjects so their cache entries stay warm.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	usecase contracts.RosterUsecase
	loc     *time.Location
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
}

// NewWorker builds the prefetch worker. lockerSvc may be nil when the
// service runs a single replica (memory cache backend); runs then proceed
// without leader election.
func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, usecase contracts.RosterUsecase, loc *time.Location) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, usecase: usecase, loc: loc}
}

// Start schedules the periodic prefetch. Invalid cron specs fall back to a
// cadence that keeps entries inside their TTL.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.PrefetchCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("roster.worker: failed to schedule with provided cron spec; falling back to @every 4m", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 4m", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the cron to drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	subjects := w.prefetchSubjects()
	if len(subjects) == 0 {
		return
	}

	if w.locker != nil {
		acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, 2*time.Minute)
		if err != nil {
			w.log.Warn("roster.worker: leader lock attempt failed", zap.Error(err))
			return
		}
		if !acquired {
			w.log.Info("roster.worker: leader lock not acquired; another instance is running")
			return
		}
		defer w.locker.Unlock(ctx, leaderLockKey, token)
	}

	weekStart := models.NewDayWindow(utils.MondayOfWeek(time.Now(), w.loc), w.loc)
	input := contracts.WeekRosterInput{WeekStart: weekStart}
	for _, subject := range subjects {
		input.SubjectID = subject
		if _, err := w.usecase.BuildWeekRoster(ctx, input); err != nil {
			w.log.Warn("roster.worker: week prefetch failed",
				zap.String(constvars.LoggingSubjectIDKey, subject),
				zap.String(constvars.LoggingWeekStartKey, weekStart.ISODate()),
				zap.Error(err),
			)
		}
	}
}

func (w *Worker) prefetchSubjects() []string {
	parts := strings.Split(w.cfg.App.PrefetchSubjects, ",")
	subjects := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			subjects = append(subjects, trimmed)
		}
	}
	return subjects
}
