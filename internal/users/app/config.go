package app

import (
	"os"
	"strconv"
	"time"

	"github.com/lumenasoft/usersvc/pkg/jwtx"
)

type Config struct {
	Issuer    string // Issuer claim for tokens (default: usersvc)
	JWTSecret string // Required in prod: HMAC secret for token signing

	AccessTokenTTL  time.Duration // Access token lifetime (default: 1h)
	RefreshTokenTTL time.Duration // Refresh token lifetime (default: 720h)

	AuthDisabled bool // Expose the user CRUD routes without bearer auth

	DatabaseFile string // Path to SQLite database file (default: ./users.db)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer: getEnvOrDefault("USERS_ISSUER", "usersvc"),
		JWTSecret: getEnvOrDefault(
			"USERS_JWT_SECRET",
			"dev-secret-change-in-production",
		), // Fine for dev; override everywhere else
		AccessTokenTTL: getEnvDurationOrDefault(
			"USERS_ACCESS_TOKEN_TTL",
			jwtx.DefaultAccessTokenTTL,
		),
		RefreshTokenTTL: getEnvDurationOrDefault(
			"USERS_REFRESH_TOKEN_TTL",
			jwtx.DefaultRefreshTokenTTL,
		),
		AuthDisabled:        getEnvBoolOrDefault("USERS_AUTH_DISABLED", false),
		DatabaseFile:        getEnvOrDefault("USERS_DATABASE_FILE", "users.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds (for compatibility with deployments
	// that configured TTLs as plain second counts)
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
