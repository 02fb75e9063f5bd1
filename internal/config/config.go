package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all application configuration.
type Config struct {
	Port             string
	DataDir          string
	JWTSecret        string
	JWTExpiry        time.Duration
	AutosaveInterval time.Duration
	LogLevel         string
	CORSOrigins      []string
}

// Load reads configuration from the environment, preferring a local
// .env file when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using system environment variables")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DataDir:          getEnv("DATA_DIR", "data"),
		JWTSecret:        getEnv("JWT_SECRET", "default-secret-key-change-in-production"),
		JWTExpiry:        getDuration("JWT_EXPIRY", 24*time.Hour),
		AutosaveInterval: getDuration("AUTOSAVE_INTERVAL", 60*time.Second),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration retrieves a duration environment variable or returns a
// default value. Malformed values fall back to the default.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.WithField("key", key).WithError(err).Warn("invalid duration, using default")
		return defaultValue
	}
	return parsed
}
