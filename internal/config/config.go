// Package config loads runtime settings from defaults, an optional YAML file,
// an optional dotenv file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string        `yaml:"port" env:"PORT"`
	HTTPTimeout     time.Duration `yaml:"http_timeout" env:"HTTP_TIMEOUT"`
	CacheMaxEntries int           `yaml:"cache_max_entries" env:"CACHE_MAX_ENTRIES"`

	RAWG       RAWGConfig       `yaml:"rawg"`
	CheapShark CheapSharkConfig `yaml:"cheapshark"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// RAWGConfig controls how we talk to the RAWG catalog API.
type RAWGConfig struct {
	BaseURL string `yaml:"base_url" env:"RAWG_BASE_URL"`
	APIKey  string `yaml:"api_key" env:"RAWG_API_KEY"`
}

// CheapSharkConfig controls how we talk to the CheapShark deals API.
type CheapSharkConfig struct {
	BaseURL string `yaml:"base_url" env:"CHEAPSHARK_BASE_URL"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Port:        defaultPort,
		HTTPTimeout: defaultHTTPTimeout,
		RAWG:        RAWGConfig{BaseURL: defaultRAWGBaseURL},
		CheapShark:  CheapSharkConfig{BaseURL: defaultCheapSharkBaseURL},
		Logging:     LoggingConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		Metrics:     defaultMetrics(),
	}
}

// Load layers defaults, the YAML file named by GAMESCOUT_CONFIG, the dotenv file
// named by GAMESCOUT_DOTENV (.env by default) and the environment, then validates.
// Process environment always wins over dotenv values.
func Load() (Config, error) {
	cfg := Defaults()

	if path := strings.TrimSpace(os.Getenv(envConfigPath)); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	dotenvPath := strings.TrimSpace(os.Getenv(envDotenvPath))
	if dotenvPath == "" {
		dotenvPath = defaultDotenvPath
	}
	environ, err := environment(dotenvPath)
	if err != nil {
		return Config{}, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	normalize(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("port is required"))
	}
	if strings.TrimSpace(c.RAWG.BaseURL) == "" {
		errs = append(errs, errors.New("rawg base url is required"))
	}
	if strings.TrimSpace(c.CheapShark.BaseURL) == "" {
		errs = append(errs, errors.New("cheapshark base url is required"))
	}
	if c.CacheMaxEntries < 0 {
		errs = append(errs, fmt.Errorf("cache max entries must not be negative, got %d", c.CacheMaxEntries))
	}
	if c.Metrics.Enabled && strings.TrimSpace(c.Metrics.Port) == "" {
		errs = append(errs, errors.New("metrics port is required when metrics are enabled"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func normalize(cfg *Config) {
	cfg.Port = strings.TrimSpace(cfg.Port)
	cfg.RAWG.BaseURL = strings.TrimSpace(cfg.RAWG.BaseURL)
	cfg.RAWG.APIKey = strings.TrimSpace(cfg.RAWG.APIKey)
	cfg.CheapShark.BaseURL = strings.TrimSpace(cfg.CheapShark.BaseURL)
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = defaultServiceName
	}
}
