// Package config loads the application configuration from environment
// variables at startup. The resulting Config is read-only: load it once
// in main and pass it down, never mutate or re-read it.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDevSecret is the JWT signing secret used when JWT_SECRET is unset.
// It exists so a fresh checkout runs without setup; main logs a warning
// when it is in effect.
const DefaultDevSecret = "your-secret-key-change-in-production"

// sqliteScheme prefixes DATABASE_URL values that select the SQLite driver.
const sqliteScheme = "sqlite:"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type DatabaseConfig struct {
	// URL selects the driver: "sqlite:<path>" for SQLite,
	// anything else is treated as a Postgres DSN.
	URL           string
	RunMigrations bool
}

type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	RateLimit  int           // 認証エンドポイントのウィンドウあたり試行上限（0以下で無効）
	RateWindow time.Duration // 試行回数をリセットする間隔
}

// Load reads configuration from environment variables, falling back to
// development defaults. A .env file is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8000"),
			CORSOrigins: getSliceEnv("CORS_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			URL:           getEnv("DATABASE_URL", "sqlite:todoapp.db"),
			RunMigrations: getBoolEnv("RUN_MIGRATIONS", true),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", DefaultDevSecret),
			TokenTTL:   getDurationEnv("TOKEN_TTL", 30*time.Minute),
			RateLimit:  getIntEnv("AUTH_RATE_LIMIT", 10),
			RateWindow: getDurationEnv("AUTH_RATE_WINDOW", time.Minute),
		},
	}
}

// IsSQLite reports whether the URL selects the SQLite driver.
func (c DatabaseConfig) IsSQLite() bool {
	return strings.HasPrefix(c.URL, sqliteScheme)
}

// SQLitePath returns the file path portion of a sqlite: URL.
func (c DatabaseConfig) SQLitePath() string {
	return strings.TrimPrefix(c.URL, sqliteScheme)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

// getDurationEnv interprets the value as a number of seconds.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return time.Duration(seconds) * time.Second
}

// getSliceEnv splits a comma-separated value, trimming whitespace.
func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}
