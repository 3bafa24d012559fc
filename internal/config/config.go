package config

import (
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds Azure SQL / SQL Server connection settings.
// Server may carry an explicit port ("host:1433").
type DatabaseConfig struct {
	Server                 string
	Name                   string
	User                   string
	Password               string
	Encrypt                bool
	TrustServerCertificate bool
	DialTimeoutSec         int
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSec     int
}

// JWTConfig holds access token settings.
type JWTConfig struct {
	SecretKey    string
	AccessTTLHrs int
}

// ServiceBusConfig holds the booking queue transport settings.
type ServiceBusConfig struct {
	ConnectionString  string
	QueueName         string
	ReceiveWaitSec    int
	RestartBackoffSec int
}

// WorkerConfig holds consumer process settings.
type WorkerConfig struct {
	Concurrency int
}

// MinIOConfig holds object storage settings for pet photos.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost            string
	Port               string
	Env                string
	RequestTimeoutSec  int
	ShutdownTimeoutSec int
	CORSOrigins        []string
	Database           DatabaseConfig
	JWT                JWTConfig
	ServiceBus         ServiceBusConfig
	Worker             WorkerConfig
	MinIO              MinIOConfig
}

// IsProduction reports whether the production-mode marker is set.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// defaultCORSOrigins matches the origins the frontend is served from.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5000",
	"https://pawfectfind.azurewebsites.net",
	"https://pawfectfind-backend.azurewebsites.net",
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:            getEnv("APP_HOST", "localhost:8000"),
		Port:               getEnv("PORT", "8000"),
		Env:                getEnv("APP_ENV", "development"),
		RequestTimeoutSec:  getEnvInt("REQUEST_TIMEOUT_SEC", 120),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 120),
		CORSOrigins:        getEnvList("CORS_ORIGINS", defaultCORSOrigins),
		Database: DatabaseConfig{
			Server:                 getEnv("AZURE_SQL_SERVER", ""),
			Name:                   getEnv("AZURE_SQL_DATABASE", ""),
			User:                   getEnv("AZURE_SQL_USERNAME", ""),
			Password:               getEnv("AZURE_SQL_PASSWORD", ""),
			Encrypt:                getEnvBool("AZURE_SQL_ENCRYPT", true),
			TrustServerCertificate: getEnvBool("AZURE_SQL_TRUST_SERVER_CERT", false),
			DialTimeoutSec:         getEnvInt("AZURE_SQL_DIAL_TIMEOUT_SEC", 30),
			MaxOpenConns:           getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:           getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec:     getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		JWT: JWTConfig{
			// Dev fallback only; production deployments must set JWT_SECRET_KEY.
			SecretKey:    getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			AccessTTLHrs: getEnvInt("JWT_ACCESS_TTL_HOURS", 24),
		},
		ServiceBus: ServiceBusConfig{
			ConnectionString:  getEnv("SERVICE_BUS_CONNECTION_STRING", ""),
			QueueName:         getEnv("BOOKING_QUEUE_NAME", "booking-queue"),
			ReceiveWaitSec:    getEnvInt("QUEUE_RECEIVE_WAIT_SEC", 30),
			RestartBackoffSec: getEnvInt("QUEUE_RESTART_BACKOFF_SEC", 10),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvInt("WORKER_CONCURRENCY", 4),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
