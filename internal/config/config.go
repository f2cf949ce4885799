package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	Market struct {
		Candidates   []string `yaml:"candidates"`
		Defaults     []string `yaml:"defaults"`
		DefaultStart string   `yaml:"default_start"`
		AutoAdjust   bool     `yaml:"auto_adjust"`
	} `yaml:"market"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		SnapshotCron string `yaml:"snapshot_cron"`
		LookbackDays int    `yaml:"lookback_days"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
		cfg.Server.Listen = v
	}
	if v := os.Getenv("DATASOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATASOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SNAPSHOT_CRON"); v != "" {
		cfg.Schedule.SnapshotCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Schedule.LookbackDays = n
		}
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if len(cfg.Market.Candidates) == 0 {
		cfg.Market.Candidates = []string{
			"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA",
			"META", "NVDA", "NFLX", "IBM", "INTC",
		}
	}
	if len(cfg.Market.Defaults) == 0 {
		cfg.Market.Defaults = []string{"AAPL", "MSFT"}
	}
	if cfg.Market.DefaultStart == "" {
		cfg.Market.DefaultStart = "2023-01-01"
	}
	if cfg.Schedule.LookbackDays == 0 {
		cfg.Schedule.LookbackDays = 30
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if len(c.Market.Candidates) == 0 {
		return fmt.Errorf("market.candidates must not be empty")
	}
	candidates := make(map[string]bool, len(c.Market.Candidates))
	for _, sym := range c.Market.Candidates {
		if sym == "" || sym != strings.ToUpper(sym) {
			return fmt.Errorf("market.candidates: %q is not an uppercase ticker", sym)
		}
		candidates[sym] = true
	}
	for _, sym := range c.Market.Defaults {
		if !candidates[sym] {
			return fmt.Errorf("market.defaults: %q is not in market.candidates", sym)
		}
	}
	if _, err := time.Parse("2006-01-02", c.Market.DefaultStart); err != nil {
		return fmt.Errorf("market.default_start: %w", err)
	}
	if c.Schedule.LookbackDays <= 0 {
		return fmt.Errorf("schedule.lookback_days must be positive")
	}
	return nil
}

// IsCandidate reports whether sym is in the configured candidate list.
func (c *Config) IsCandidate(sym string) bool {
	for _, s := range c.Market.Candidates {
		if s == sym {
			return true
		}
	}
	return false
}
