package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string    `validate:"required"`
	Stage       string    `validate:"required"`
	Log         LogConfig
	Envelope    EnvelopeConfig
	Output      OutputConfig
	RateLimit   RateLimitConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"required,oneof=text json"`
}

// EnvelopeConfig holds request envelope builder configuration
type EnvelopeConfig struct {
	RequestTimeEpoch int64 `validate:"gte=0"`
}

// OutputConfig holds CLI output configuration
type OutputConfig struct {
	Pretty bool
}

// RateLimitConfig holds handler rate limiting configuration. A zero RPS disables limiting.
type RateLimitConfig struct {
	RPS   float64 `validate:"gte=0"`
	Burst int     `validate:"gte=1"`
}

var validate = validator.New()

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("STAGE", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("REQUEST_TIME_EPOCH", 3)
	v.SetDefault("OUTPUT_PRETTY", true)
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 1)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Stage:       v.GetString("STAGE"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Envelope: EnvelopeConfig{
			RequestTimeEpoch: v.GetInt64("REQUEST_TIME_EPOCH"),
		},
		Output: OutputConfig{
			Pretty: v.GetBool("OUTPUT_PRETTY"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
