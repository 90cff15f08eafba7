package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig_Defaults(t *testing.T) {
	cfg := NewInternalConfig()

	assert.Equal(t, ":8080", cfg.App.Port)
	assert.Equal(t, "free", cfg.App.Plan)
	assert.Equal(t, 10, cfg.App.RequestTimeoutInSeconds)
	assert.Equal(t, 300, cfg.Timesheet.CacheTTLInSeconds)
	assert.False(t, cfg.Timesheet.CopyWeekAtomic)
}

func TestNewInternalConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PLAN", "paid")
	t.Setenv("APP_API_KEY", "secret")
	t.Setenv("TIMESHEET_COPY_WEEK_ATOMIC", "true")
	t.Setenv("TIMESHEET_CACHE_TTL_IN_SECONDS", "not-a-number")

	cfg := NewInternalConfig()

	assert.Equal(t, "paid", cfg.App.Plan)
	assert.Equal(t, "secret", cfg.App.APIKey)
	assert.True(t, cfg.Timesheet.CopyWeekAtomic)
	assert.Equal(t, 300, cfg.Timesheet.CacheTTLInSeconds)
}

func TestNewDriverConfig_FromEnv(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := NewDriverConfig()

	assert.Equal(t, "db", cfg.PostgresDB.Host)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.Minio.UseSSL)
}
