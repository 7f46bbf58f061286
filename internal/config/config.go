// Package config loads service settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all phitinh settings.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Store   StoreConfig   `yaml:"store"`
	Cache   CacheConfig   `yaml:"cache"`
	Metrics MetricsConfig `yaml:"metrics"`
	Sweep   SweepConfig   `yaml:"sweep"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, auto
}

type StoreConfig struct {
	Kind       string `yaml:"kind"` // fs, sqlite
	Path       string `yaml:"path"`
	SQLitePath string `yaml:"sqlite_path"`
}

// CacheConfig configures the optional Redis chart cache. Empty address
// disables it.
type CacheConfig struct {
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	TTL           time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type SweepConfig struct {
	Workers int `yaml:"workers"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Addr: ":8080"},
		Log:     LogConfig{Level: "info", Format: "auto"},
		Store:   StoreConfig{Kind: "fs", Path: "./data", SQLitePath: "./data/charts.db"},
		Cache:   CacheConfig{TTL: 24 * time.Hour},
		Metrics: MetricsConfig{Enabled: true},
		Sweep:   SweepConfig{Workers: 8},
	}
}

// Load reads path over the defaults, then applies environment overrides. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnvOverrides() {
	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	str("PHITINH_ADDR", &c.Server.Addr)
	str("PHITINH_LOG_LEVEL", &c.Log.Level)
	str("PHITINH_LOG_FORMAT", &c.Log.Format)
	str("PHITINH_STORE", &c.Store.Kind)
	str("PHITINH_DATA_DIR", &c.Store.Path)
	str("PHITINH_SQLITE_PATH", &c.Store.SQLitePath)
	str("REDIS_ADDR", &c.Cache.RedisAddr)
	str("REDIS_PASS", &c.Cache.RedisPassword)
	if v := os.Getenv("REDIS_DB"); v != "" {
		// ignore parse errors, keep the configured db
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Cache.RedisDB = n
		}
	}
	if v := os.Getenv("PHITINH_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Cache.TTL = d
		}
	}
	if v := os.Getenv("PHITINH_METRICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Metrics.Enabled = b
		}
	}
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Kind {
	case "fs", "sqlite":
	default:
		return fmt.Errorf("store.kind must be fs or sqlite, got %q", c.Store.Kind)
	}
	if c.Sweep.Workers < 0 {
		return fmt.Errorf("sweep.workers must not be negative")
	}
	return nil
}
