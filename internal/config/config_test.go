package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "aes-256-gcm", cfg.DefaultAlgorithm)
				assert.Equal(t, 2048, cfg.DefaultRSAKeySize)
				assert.False(t, cfg.RateLimitEnabled)
				assert.False(t, cfg.CORSEnabled)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "cryptokit", cfg.MetricsNamespace)
				assert.Equal(t, 8081, cfg.MetricsPort)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST": "localhost",
				"SERVER_PORT": "9090",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
			},
		},
		{
			name: "load custom cryptography defaults",
			envVars: map[string]string{
				"DEFAULT_ALGORITHM":    "aes-128-cbc",
				"DEFAULT_RSA_KEY_SIZE": "4096",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "aes-128-cbc", cfg.DefaultAlgorithm)
				assert.Equal(t, 4096, cfg.DefaultRSAKeySize)
			},
		},
		{
			name: "load custom rate limit configuration",
			envVars: map[string]string{
				"RATE_LIMIT_ENABLED":          "true",
				"RATE_LIMIT_REQUESTS_PER_SEC": "5.5",
				"RATE_LIMIT_BURST":            "11",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 5.5, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 11, cfg.RateLimitBurst)
			},
		},
		{
			name: "load custom metrics configuration",
			envVars: map[string]string{
				"METRICS_ENABLED":   "false",
				"METRICS_NAMESPACE": "testapp",
				"METRICS_PORT":      "9091",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "testapp", cfg.MetricsNamespace)
				assert.Equal(t, 9091, cfg.MetricsPort)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}
			defer func() {
				for key := range tt.envVars {
					os.Unsetenv(key)
				}
			}()

			cfg := Load()
			tt.validate(t, cfg)
		})
	}
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		expected string
	}{
		{"debug", "debug"},
		{"info", "release"},
		{"warn", "release"},
		{"error", "release"},
		{"unknown", "release"},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			assert.Equal(t, tt.expected, cfg.GetGinMode())
		})
	}
}
