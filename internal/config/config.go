package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Property dataset source. DataSource selects the loader: "csv", "xlsx"
	// or "postgres". DataPath is the file path for file-based sources.
	DataSource  string
	DataPath    string
	DatabaseURL string

	// Default dialect for fresh sessions.
	DefaultDialect string

	// Session state storage: "memory" or "redis".
	SessionBackend string
	SessionTTL     time.Duration
	RedisAddr      string
	RedisPassword  string
	RedisTLS       bool

	// Chat transcript persistence. Falls back to in-memory storage when
	// ChatsDatabaseURL is empty.
	ChatsDatabaseURL string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "5000"),
		Env:              getEnv("ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DataSource:       strings.ToLower(strings.TrimSpace(getEnv("DATA_SOURCE", "csv"))),
		DataPath:         getEnv("DATA_PATH", "data/properties.csv"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		DefaultDialect:   getEnv("DEFAULT_DIALECT", "egyptian"),
		SessionBackend:   strings.ToLower(strings.TrimSpace(getEnv("SESSION_BACKEND", "memory"))),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		RedisAddr:        getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisTLS:         getEnvAsBool("REDIS_TLS", false),
		ChatsDatabaseURL: getEnv("CHATS_DATABASE_URL", getEnv("DATABASE_URL", "")),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
