package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shiftcal-service/internal/app/config"
	"shiftcal-service/internal/app/contracts"
	"shiftcal-service/internal/app/delivery/http/controllers"
	"shiftcal-service/internal/app/delivery/http/middlewares"
	"shiftcal-service/internal/app/delivery/http/routers"
	"shiftcal-service/internal/app/drivers/database"
	"shiftcal-service/internal/app/drivers/logger"
	"shiftcal-service/internal/app/services/roster"
	"shiftcal-service/internal/app/services/shared/cache"
	"shiftcal-service/internal/app/services/shared/locker"
	sharedredis "shiftcal-service/internal/app/services/shared/redis"
	"shiftcal-service/internal/app/services/shifts"
	"shiftcal-service/internal/app/services/subjects"
	"shiftcal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("invalid APP_TIMEZONE", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	var redisClient *redis.Client
	if internalConfig.Cache.Backend == constvars.CacheBackendRedis {
		redisClient = database.NewRedisClient(driverConfig)
	}
	chiRouter := chi.NewRouter()

	worker := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("waiting for pending requests to be processed..")

	if worker != nil {
		worker.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, location *time.Location) *roster.Worker {
	// Cache backend
	var cacheStore contracts.CacheStore
	var lockerService contracts.LockerService
	if bootstrap.Redis != nil {
		redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
		cacheStore = cache.NewRedisCacheStore(redisRepository, bootstrap.Logger)
		lockerService = locker.NewLockService(redisRepository, bootstrap.Logger)
	} else {
		cacheStore = cache.NewMemoryCacheStore()
	}

	// Shift source
	var source contracts.ShiftSourceClient
	var directory contracts.SubjectDirectoryClient
	switch bootstrap.InternalConfig.ShiftSource.Kind {
	case constvars.ShiftSourceKindICS:
		source = shifts.NewICSShiftClient(bootstrap.InternalConfig.ShiftSource.ICSFeedUrl)
	default:
		teamsClient := shifts.NewTeamsShiftClient(
			bootstrap.InternalConfig.ShiftSource.BaseUrl,
			bootstrap.InternalConfig.ShiftSource.Token,
			bootstrap.InternalConfig.ShiftSource.RequestsPerSecond,
		)
		source = teamsClient
		directory = teamsClient
	}
	subjectResolver := subjects.NewSubjectResolver(directory)

	// Roster
	rosterUsecase := roster.NewRosterUsecase(source, cacheStore, subjectResolver, bootstrap.Logger, bootstrap.InternalConfig.Cache.TTLMinutes)
	rosterController := controllers.NewRosterController(rosterUsecase, bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, mw, rosterController)

	// Prefetch worker
	if bootstrap.InternalConfig.App.PrefetchCronSpec == "" {
		return nil
	}
	worker := roster.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, rosterUsecase, location)
	worker.Start(context.Background())
	return worker
}
