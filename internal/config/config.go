package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Brapi struct {
		Token string `yaml:"token"`
	} `yaml:"brapi"`
	Cache struct {
		ValidityMinutes int    `yaml:"validity_minutes"`
		SweepCron       string `yaml:"sweep_cron"`
	} `yaml:"cache"`
	Watchlist struct {
		Tickers    []string `yaml:"tickers"`
		WarmupCron string   `yaml:"warmup_cron"`
	} `yaml:"watchlist"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Upstream struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"upstream"`
	Technical struct {
		Enabled *bool `yaml:"enabled"`
	} `yaml:"technical"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; defaults cover everything.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("BRAPI_TOKEN"); v != "" {
		cfg.Brapi.Token = v
	}
	if v := os.Getenv("CACHE_VALIDITY_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cache.ValidityMinutes = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Upstream.TimeoutSeconds = n
		}
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Cache.ValidityMinutes == 0 {
		cfg.Cache.ValidityMinutes = 5
	}
	if cfg.Cache.SweepCron == "" {
		cfg.Cache.SweepCron = "@every 10m"
	}
	if cfg.Upstream.TimeoutSeconds == 0 {
		cfg.Upstream.TimeoutSeconds = 15
	}

	return cfg, nil
}

// Validate checks that the loaded configuration is coherent.
func (c *Config) Validate() error {
	if c.Cache.ValidityMinutes < 0 {
		return fmt.Errorf("cache.validity_minutes must not be negative")
	}
	if c.Upstream.TimeoutSeconds <= 0 {
		return fmt.Errorf("upstream.timeout_seconds must be positive")
	}
	if len(c.Watchlist.Tickers) > 0 && c.Watchlist.WarmupCron == "" {
		return fmt.Errorf("watchlist.warmup_cron is required when watchlist.tickers is set")
	}
	return nil
}

// CacheValidity returns the cache validity window as a duration.
func (c *Config) CacheValidity() time.Duration {
	return time.Duration(c.Cache.ValidityMinutes) * time.Minute
}

// UpstreamTimeout returns the per-request upstream timeout as a duration.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.TimeoutSeconds) * time.Second
}

// TechnicalEnabled reports whether the technical bonus scorer should run.
// It defaults to on.
func (c *Config) TechnicalEnabled() bool {
	return c.Technical.Enabled == nil || *c.Technical.Enabled
}
