// Package config loads index configuration from the process environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/az-symspell/symspellidx/internal/symspell"
)

// LoadEnv loads environment variables from a .env file, searching the
// current directory and its two nearest ancestors. Existing environment
// variables are never overwritten.
func LoadEnv() error {
	envPaths := []string{".env", "../.env", "../../.env"}

	for _, envPath := range envPaths {
		data, err := os.ReadFile(envPath)
		if err != nil {
			continue
		}

		lines := strings.Split(string(data), "\n")
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
		break
	}
	return nil
}

// GetEnv returns an environment variable with a string default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns an environment variable parsed as int, with a default.
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvInt64 returns an environment variable parsed as int64, with a default.
func GetEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvBool returns an environment variable parsed as bool, with a default.
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}

// IndexConfigFromEnv builds a symspell.Config from SYMSPELL_* environment
// variables, falling back to symspell.DefaultConfig for anything unset.
func IndexConfigFromEnv() symspell.Config {
	def := symspell.DefaultConfig()
	return symspell.Config{
		MaxEditDistance: GetEnvInt("SYMSPELL_MAX_EDIT_DISTANCE", def.MaxEditDistance),
		PrefixLength:    GetEnvInt("SYMSPELL_PREFIX_LENGTH", def.PrefixLength),
		CountThreshold:  GetEnvInt64("SYMSPELL_COUNT_THRESHOLD", def.CountThreshold),
	}
}

// PostgresDSN returns the connection string for PostgresStore, read from
// SYMSPELL_DATABASE_URL with no default: callers must treat an empty
// result as "no database configured".
func PostgresDSN() string {
	return GetEnv("SYMSPELL_DATABASE_URL", "")
}

// ListenAddr returns the address cmd/symspell's serve subcommand binds to.
func ListenAddr() string {
	return GetEnv("SYMSPELL_LISTEN_ADDR", ":8080")
}
