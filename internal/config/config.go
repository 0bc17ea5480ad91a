package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"inventory-dashboard-connector/internal/utils"
)

// Config holds all configuration for the connector and the bundled tools.
type Config struct {
	BaseURL         string
	RequestTimeout  time.Duration
	LogLevel        string
	Environment     string
	TokenPath       string
	Port            string
	MetricsExporter string
	MetricsAddr     string
}

// LoadConfig loads configuration from a .env file and environment variables.
func LoadConfig() *Config {
	// Load .env if present; it never overrides variables already set in the
	// environment.
	err := godotenv.Load()
	if err != nil {
		slog.Debug("Could not load .env file, continuing with system environment variables only", "error", err)
	} else {
		slog.Info("Successfully loaded .env file")
	}

	config := &Config{
		BaseURL:         getEnvWithDefault("API_BASE_URL", "http://localhost:8080"),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
		TokenPath:       getEnvWithDefault("TOKEN_PATH", defaultTokenPath()),
		Port:            getEnvWithDefault("PORT", "8080"),
		MetricsExporter: getEnvWithDefault("METRICS_EXPORTER", ""),
		MetricsAddr:     getEnvWithDefault("METRICS_ADDR", ":9080"),
	}

	utils.SetupLogging(config.LogLevel)

	slog.Info("Configuration loaded",
		"baseURL", config.BaseURL,
		"requestTimeout", config.RequestTimeout.String(),
		"environment", config.Environment,
		"logLevel", config.LogLevel,
		"tokenPath", config.TokenPath,
		"metricsExporter", config.MetricsExporter)

	return config
}

// getEnvWithDefault gets an environment variable with a default fallback
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationWithDefault parses a duration environment variable, falling
// back on the default when unset or malformed.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in environment, using default",
			"key", key, "value", value, "default", defaultValue.String())
		return defaultValue
	}
	return d
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dashboard_token"
	}
	return filepath.Join(home, ".inventory-dashboard", "token")
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
