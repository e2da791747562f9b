// Package config provides centralized configuration for the API.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values, loaded once at
// startup. The signing secret is never rotated at runtime.
type Config struct {
	Port        string // HTTP listen address, e.g. ":8080"
	DatabaseURL string // Postgres DSN
	SecretKey   string // HMAC secret for bearer tokens
	BcryptCost  int    // bcrypt work factor for password hashing
}

// Load reads configuration from environment variables with defaults
// suitable for local development.
func Load() Config {
	return Config{
		Port:        listenAddr(getEnv("PORT", ":8080")),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=password dbname=jobhive port=5432 sslmode=disable"),
		SecretKey:   getEnv("SECRET_KEY", "secret-dev"),
		BcryptCost:  getEnvInt("BCRYPT_COST", 12),
	}
}

// listenAddr accepts PORT as either a bare port ("8080") or a full
// listen address (":8080") and always returns the address form.
func listenAddr(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
