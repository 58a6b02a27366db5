package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Database struct {
		Path string `yaml:"path" default:"stockscope.db"`
	} `yaml:"database"`
	Cache struct {
		Backend string        `yaml:"backend" default:"sqlite"`
		TTL     time.Duration `yaml:"ttl" default:"24h"`
		Redis   struct {
			Addr     string `yaml:"addr" default:"localhost:6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"stockscope"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Provider struct {
		BaseURL string        `yaml:"base_url" default:"https://query1.finance.yahoo.com"`
		Timeout time.Duration `yaml:"timeout" default:"30s"`
		MaxRPS  float64       `yaml:"max_rps" default:"5"`
	} `yaml:"provider"`
	Analysis struct {
		DefaultPeriod    string  `yaml:"default_period" default:"1y"`
		TechnicalGate    float64 `yaml:"technical_gate" default:"-3"`
		StrongSellCutoff float64 `yaml:"strong_sell_cutoff" default:"-6"`
		HistoryLimit     int     `yaml:"history_limit" default:"10"`
	} `yaml:"analysis"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		c.Provider.BaseURL = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Cache.Backend != "sqlite" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'sqlite' or 'redis', got '%s'", c.Cache.Backend)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Provider.MaxRPS <= 0 {
		return fmt.Errorf("provider.max_rps must be positive")
	}
	switch c.Analysis.DefaultPeriod {
	case "1mo", "3mo", "6mo", "1y", "2y", "5y":
	default:
		return fmt.Errorf("analysis.default_period '%s' is not a supported range", c.Analysis.DefaultPeriod)
	}
	return nil
}
