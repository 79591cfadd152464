package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
)

// Config holds all runtime configuration for FS-Web.
//
// Values are resolved in two passes: an optional YAML file first (FS_WEB_CONFIG,
// default config.yaml if present), then environment variables on top.
type Config struct {
	Port        string        `env:"PORT" yaml:"port"`
	DatabaseURL string        `env:"DATABASE_URL" yaml:"database_url"`
	RedisURL    string        `env:"REDIS_URL" yaml:"redis_url"`
	UpstreamURL string        `env:"UPSTREAM_URL" yaml:"upstream_url"`
	CacheTTL    time.Duration `env:"CAMPAIGN_CACHE_TTL" yaml:"campaign_cache_ttl"`
}

// DefaultUpstreamURL is the FundSpring API endpoint used when none is configured.
const DefaultUpstreamURL = "http://localhost:8000"

// Load reads configuration from the optional YAML file and the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:     "5050",
		CacheTTL: 30 * time.Second,
	}

	path := os.Getenv("FS_WEB_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.UpstreamURL == "" {
		cfg.UpstreamURL = DefaultUpstreamURL
	}

	return cfg, nil
}
