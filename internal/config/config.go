package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"

	"techindex/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig `validate:"required"`
	Data    DataConfig
	Logging LoggingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port              string `validate:"required"`
	MaxConcurrentLoad int64  `validate:"gte=1"`
}

// DataConfig holds data intake settings
type DataConfig struct {
	// ExcelFile optionally preloads a score sheet at startup.
	ExcelFile string
	// WeightsFile optionally points at a yaml preset file.
	WeightsFile string
	// Preset names the preset to start with; empty means the file's default.
	Preset string
}

// LoggingConfig holds log verbosity settings
type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "8080"),
			MaxConcurrentLoad: getEnvInt64OrDefault("MAX_CONCURRENT_UPLOADS", 4),
		},
		Data: DataConfig{
			ExcelFile:   getEnvOrDefault("EXCEL_FILE", ""),
			WeightsFile: getEnvOrDefault("WEIGHTS_FILE", ""),
			Preset:      getEnvOrDefault("WEIGHTS_PRESET", ""),
		},
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
