package testutils

import (
	"stock-price-proxy/internal/config"
	"stock-price-proxy/internal/logger"

	"github.com/sirupsen/logrus"
)

// MockLogger creates a logger for testing
func MockLogger() *logger.Logger {
	log := logger.New("debug")
	log.SetLevel(logrus.PanicLevel) // keep test output quiet
	return log
}

// MockConfig creates a configuration for testing pointed at the given
// upstream URL
func MockConfig(upstreamURL string) *config.Config {
	return &config.Config{
		Port:            "3000",
		LogLevel:        "debug",
		AllowedOrigin:   "https://vn-stock-chart.vercel.app",
		UpstreamBaseURL: upstreamURL,
	}
}
