package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origServer := os.Getenv("AZURE_SQL_SERVER")
	defer os.Setenv("AZURE_SQL_SERVER", origServer)

	os.Setenv("AZURE_SQL_SERVER", "test-server.database.windows.net")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("WORKER_CONCURRENCY", "1")
	os.Setenv("MINIO_USE_SSL", "true")
	defer func() {
		os.Unsetenv("DB_MAX_OPEN_CONNS")
		os.Unsetenv("WORKER_CONCURRENCY")
		os.Unsetenv("MINIO_USE_SSL")
	}()

	cfg := Load()

	assert.Equal(t, "test-server.database.windows.net", cfg.Database.Server)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, 1, cfg.Worker.Concurrency)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("CORS_ORIGINS")
	os.Unsetenv("BOOKING_QUEUE_NAME")

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 120, cfg.RequestTimeoutSec)
	assert.Equal(t, "booking-queue", cfg.ServiceBus.QueueName)
	assert.Equal(t, 30, cfg.ServiceBus.ReceiveWaitSec)
	assert.Equal(t, 10, cfg.ServiceBus.RestartBackoffSec)
	assert.Equal(t, 4, cfg.Worker.Concurrency)
	assert.True(t, cfg.Database.Encrypt)
	assert.False(t, cfg.Database.TrustServerCertificate)
	assert.Equal(t, 30, cfg.Database.DialTimeoutSec)
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:3000")
}

func TestIsProduction(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	defer os.Unsetenv("APP_ENV")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvList(t *testing.T) {
	key := "TEST_LIST_VAR"

	os.Setenv(key, "http://a.example, http://b.example ,")
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, getEnvList(key, nil))

	os.Unsetenv(key)
	assert.Equal(t, []string{"fallback"}, getEnvList(key, []string{"fallback"}))
}
