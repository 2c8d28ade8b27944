package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config) bool
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			expected: func(cfg *Config) bool {
				return cfg.Port == "3000" &&
					cfg.LogLevel == "info" &&
					cfg.AllowedOrigin == "https://vn-stock-chart.vercel.app" &&
					cfg.UpstreamBaseURL == "https://services.entrade.com.vn/chart-api/v2/ohlcs/stock"
			},
		},
		{
			name: "custom configuration",
			envVars: map[string]string{
				"PORT":              "9090",
				"LOG_LEVEL":         "debug",
				"ALLOWED_ORIGIN":    "https://example.test",
				"UPSTREAM_BASE_URL": "http://localhost:1234/ohlcs/stock",
			},
			expected: func(cfg *Config) bool {
				return cfg.Port == "9090" &&
					cfg.LogLevel == "debug" &&
					cfg.AllowedOrigin == "https://example.test" &&
					cfg.UpstreamBaseURL == "http://localhost:1234/ohlcs/stock"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// t.Setenv with an empty value falls through to the default,
			// and restores the original environment after the test.
			for _, key := range []string{"PORT", "LOG_LEVEL", "ALLOWED_ORIGIN", "UPSTREAM_BASE_URL"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !tt.expected(cfg) {
				t.Errorf("Load() unexpected configuration: %+v", cfg)
			}
		})
	}
}
