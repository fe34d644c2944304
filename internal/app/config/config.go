package config

import (
	"shiftcal-service/internal/pkg/constvars"
	"shiftcal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:              utils.GetEnvString("APP_ENV", "development"),
			Port:             utils.GetEnvString("APP_PORT", ":8080"),
			Version:          utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:         utils.GetEnvString("APP_TIMEZONE", "Europe/Copenhagen"),
			EndpointPrefix:   utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:      utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			PrefetchCronSpec: utils.GetEnvString("APP_PREFETCH_CRON_SPEC", ""),
			PrefetchSubjects: utils.GetEnvString("APP_PREFETCH_SUBJECTS", ""),
		},
		ShiftSource: ShiftSource{
			Kind:              utils.GetEnvString("SHIFT_SOURCE_KIND", constvars.ShiftSourceKindTeams),
			BaseUrl:           utils.GetEnvString("SHIFT_SOURCE_BASE_URL", "https://graph.microsoft.com/beta"),
			Token:             utils.GetEnvString("SHIFT_SOURCE_TOKEN", ""),
			ICSFeedUrl:        utils.GetEnvString("SHIFT_SOURCE_ICS_FEED_URL", ""),
			RequestsPerSecond: utils.GetEnvInt("SHIFT_SOURCE_REQUESTS_PER_SECOND", 5),
		},
		Cache: Cache{
			Backend:    utils.GetEnvString("CACHE_BACKEND", constvars.CacheBackendMemory),
			TTLMinutes: utils.GetEnvInt("CACHE_TTL_MINUTES", constvars.ShiftCacheTTLMinutes),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
	}
}
