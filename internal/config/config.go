package config

import (
	"os"
	"strconv"

	"painreliefmap/domain/effect"
	"painreliefmap/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Engine   EngineConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// EngineConfig holds the analysis engine defaults, overridable per request
type EngineConfig struct {
	MinBeforeDays       int
	MinAfterDays        int
	BootstrapIterations int
	ConfidenceLevel     float64
	SignificanceAlpha   float64
	BootstrapSeed       int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Engine: EngineConfig{
			MinBeforeDays:       getEnvInt("MIN_BEFORE_DAYS", 3),
			MinAfterDays:        getEnvInt("MIN_AFTER_DAYS", 10),
			BootstrapIterations: getEnvInt("BOOTSTRAP_ITERATIONS", 1000),
			ConfidenceLevel:     getEnvFloat("CONFIDENCE_LEVEL", 0.95),
			SignificanceAlpha:   getEnvFloat("SIGNIFICANCE_ALPHA", 0.05),
			BootstrapSeed:       int64(getEnvInt("BOOTSTRAP_SEED", 0)),
		},
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// EngineOptions converts the configured defaults into engine options
func (c *Config) EngineOptions() effect.Options {
	return effect.Options{
		MinBeforeDays:       c.Engine.MinBeforeDays,
		MinAfterDays:        c.Engine.MinAfterDays,
		BootstrapIterations: c.Engine.BootstrapIterations,
		ConfidenceLevel:     c.Engine.ConfidenceLevel,
		SignificanceAlpha:   c.Engine.SignificanceAlpha,
		Seed:                c.Engine.BootstrapSeed,
	}.Normalize()
}

func validate(c *Config) error {
	if c.Engine.MinBeforeDays < 1 {
		return errors.ConfigInvalid("MIN_BEFORE_DAYS must be at least 1")
	}
	if c.Engine.MinAfterDays < 1 {
		return errors.ConfigInvalid("MIN_AFTER_DAYS must be at least 1")
	}
	if c.Engine.BootstrapIterations < 100 {
		return errors.ConfigInvalid("BOOTSTRAP_ITERATIONS must be at least 100")
	}
	if c.Engine.ConfidenceLevel <= 0 || c.Engine.ConfidenceLevel >= 1 {
		return errors.ConfigInvalid("CONFIDENCE_LEVEL must be in (0, 1)")
	}
	if c.Engine.SignificanceAlpha <= 0 || c.Engine.SignificanceAlpha >= 1 {
		return errors.ConfigInvalid("SIGNIFICANCE_ALPHA must be in (0, 1)")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
