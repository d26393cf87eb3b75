// Package config handles configuration loading for the NextCourse API.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment names accepted in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Config holds all configuration for the NextCourse API.
type Config struct {
	DatabaseURL     string `validate:"required"`
	RedisURL        string
	JWTSecret       string `validate:"required,min=16"`
	JWTAccessExpiry time.Duration
	Port            string `validate:"required"`
	Environment     string `validate:"required,oneof=development production"`
	AllowedOrigins  []string
	LogLevel        string `validate:"required,oneof=debug info warning error"`
	LogType         string `validate:"required,oneof=console file"`
	LogFilePath     string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
		JWTAccessExpiry: parseDuration(getEnv("JWT_ACCESS_EXPIRY", "1h"), time.Hour),
		Port:            getEnv("PORT", "5000"),
		Environment:     getEnv("APP_ENV", EnvDevelopment),
		AllowedOrigins:  splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogType:         getEnv("LOG_TYPE", LogTypeConsole),
		LogFilePath:     os.Getenv("LOG_FILE_PATH"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("validation failed for Config: %w", err)
	}

	if c.LogType == LogTypeFile && c.LogFilePath == "" {
		return fmt.Errorf("LOG_FILE_PATH is required when LOG_TYPE=file")
	}

	// The cache is optional in development but mandatory in production.
	if c.Environment == EnvProduction && c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required when APP_ENV=production")
	}

	return nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
