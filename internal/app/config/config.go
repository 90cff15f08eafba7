package config

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "arena_scheduler"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                    utils.GetEnvString("APP_PORT", ":8080"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1"),
			Address:                 utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			Plan:                    utils.GetEnvString("APP_PLAN", constvars.PlanFree),
			APIKey:                  utils.GetEnvString("APP_API_KEY", ""),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			WriteRateLimitPerMinute: utils.GetEnvInt("APP_WRITE_RATE_LIMIT_PER_MINUTE", 60),
			WriteRateLimitBlockTime: utils.GetEnvInt("APP_WRITE_RATE_LIMIT_BLOCK_TIME_IN_SECONDS", 30),
		},
		Timesheet: Timesheet{
			CacheTTLInSeconds:    utils.GetEnvInt("TIMESHEET_CACHE_TTL_IN_SECONDS", 300),
			CopyWeekAtomic:       utils.GetEnvBool("TIMESHEET_COPY_WEEK_ATOMIC", false),
			EventQueue:           utils.GetEnvString("TIMESHEET_EVENT_QUEUE", "arena_scheduler.timesheet_events"),
			ExportBucket:         utils.GetEnvString("TIMESHEET_EXPORT_BUCKET", "arena-scheduler-exports"),
			ExportQuotaPerMinute: utils.GetEnvInt("TIMESHEET_EXPORT_QUOTA_PER_MINUTE", 5),
		},
	}
}
