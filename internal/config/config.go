// Package config reads runtime settings from the process environment,
// optionally seeded from a .env file in development.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv seeds the environment from a .env file when one exists.
// Missing files are expected outside development and only logged.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns the named variable, or defaultVal when unset or empty.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv parses the named variable as an int, falling back to
// defaultVal when unset or unparseable.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv parses the named variable with time.ParseDuration
// ("1h", "30m", ...), falling back to defaultVal when unset or invalid.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction reports whether ENV is set to "production".
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
