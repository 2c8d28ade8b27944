package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port     string
	LogLevel string

	// AllowedOrigin is the single frontend origin permitted to read
	// responses from this proxy.
	AllowedOrigin string

	// UpstreamBaseURL is the Entrade chart API endpoint the proxy forwards to.
	UpstreamBaseURL string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", "https://vn-stock-chart.vercel.app"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "https://services.entrade.com.vn/chart-api/v2/ohlcs/stock"),
	}, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
