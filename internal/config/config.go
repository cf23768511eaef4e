// Package config holds the typed service configuration, loaded from
// YAML with environment variable overrides.
package config

import (
	"fmt"
	"time"

	sharedconfig "github.com/jonesrussell/news-aggregator/pkg/config"
	"github.com/jonesrussell/news-aggregator/pkg/logger"
)

// Config holds all configuration for the aggregator service.
type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Aggregator AggregatorConfig `yaml:"aggregator"`
	Logging    logger.Config    `yaml:"logging"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port" env:"NEWSAGG_PORT"`
	Debug   bool   `yaml:"debug" env:"NEWSAGG_DEBUG"`
}

// AggregatorConfig tunes the fan-out engine.
type AggregatorConfig struct {
	// MaxConcurrency bounds how many adapter calls run at once.
	MaxConcurrency int `yaml:"max_concurrency" env:"NEWSAGG_MAX_CONCURRENCY"`
	// FanoutTimeout is the engine-level deadline on one fan-out.
	FanoutTimeout time.Duration `yaml:"fanout_timeout" env:"NEWSAGG_FANOUT_TIMEOUT"`
}

// CORSConfig holds CORS configuration. Origins come from the
// CORS_ORIGINS environment variable, comma-separated; the literal "*"
// allows any origin.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ORIGINS"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
	MaxAge         int      `yaml:"max_age"`
}

// AllowCredentials reports whether credentialed requests are allowed:
// only when an explicit origin list is configured, never with "*".
func (c *CORSConfig) AllowCredentials() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return false
		}
	}
	return len(c.AllowedOrigins) > 0
}

// Load loads configuration from file and environment variables.
func Load(path string) (*Config, error) {
	cfg, err := sharedconfig.LoadWithDefaults[Config](path, setDefaults)
	if err != nil {
		return nil, err
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = "news-aggregator"
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = "1.0.0"
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = 8080
	}

	if cfg.Aggregator.MaxConcurrency == 0 {
		cfg.Aggregator.MaxConcurrency = 4
	}
	if cfg.Aggregator.FanoutTimeout == 0 {
		cfg.Aggregator.FanoutTimeout = 30 * time.Second
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "HEAD", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Content-Type", "Authorization"}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return &sharedconfig.ValidationError{
			Field:   "service.port",
			Message: fmt.Sprintf("invalid port: %d", c.Service.Port),
		}
	}
	if c.Aggregator.MaxConcurrency < 1 {
		return &sharedconfig.ValidationError{
			Field:   "aggregator.max_concurrency",
			Message: "must be greater than 0",
		}
	}
	if c.Aggregator.FanoutTimeout < time.Second {
		return &sharedconfig.ValidationError{
			Field:   "aggregator.fanout_timeout",
			Message: "must be at least 1s",
		}
	}
	if err := sharedconfig.ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return sharedconfig.ValidateLogFormat(c.Logging.Format)
}
