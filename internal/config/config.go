package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"ScalpRadar/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Watchlist    []string `yaml:"watchlist"`
	Interval     string   `yaml:"interval"`
	LookbackBars int      `yaml:"lookback_bars"`
	Preset       string   `yaml:"preset"`
	ProMode      bool     `yaml:"pro_mode"`
	Sessions     struct {
		AllowOpening bool `yaml:"allow_opening"`
		AllowMidday  bool `yaml:"allow_midday"`
		AllowPower   bool `yaml:"allow_power"`
	} `yaml:"sessions"`
	Alerts struct {
		CooldownMinutes int `yaml:"cooldown_minutes"`
		ScoreThreshold  int `yaml:"score_threshold"`
		MaxKept         int `yaml:"max_kept"`
	} `yaml:"alerts"`
	Scan struct {
		Cron        string `yaml:"cron"`
		Concurrency int    `yaml:"concurrency"`
	} `yaml:"scan"`
	DataSource struct {
		Kind      string `yaml:"kind"`
		ReplayDir string `yaml:"replay_dir"`
	} `yaml:"data_source"`
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
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist = splitList(v)
	}
	if v := os.Getenv("SCAN_PRESET"); v != "" {
		cfg.Preset = v
	}
	if v := os.Getenv("PRO_MODE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ProMode = b
		}
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Scan.Cron = v
	}
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		cfg.DataSource.Kind = v
	}
	if v := os.Getenv("REPLAY_DIR"); v != "" {
		cfg.DataSource.ReplayDir = v
	}
	if v := os.Getenv("ALERT_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Alerts.ScoreThreshold = n
		}
	}

	// Defaults
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = []string{"AAPL", "NVDA", "TSLA", "SPY", "QQQ"}
	}
	if cfg.Interval == "" {
		cfg.Interval = "5m"
	}
	if cfg.LookbackBars == 0 {
		cfg.LookbackBars = strategy.DefaultLookbackBars
	}
	if cfg.Preset == "" {
		cfg.Preset = strategy.DefaultPreset
	}
	// All-false means unset; open the default windows.
	if !cfg.Sessions.AllowOpening && !cfg.Sessions.AllowMidday && !cfg.Sessions.AllowPower {
		cfg.Sessions.AllowOpening = true
		cfg.Sessions.AllowPower = true
	}
	if cfg.Alerts.CooldownMinutes == 0 {
		cfg.Alerts.CooldownMinutes = 7
	}
	if cfg.Alerts.ScoreThreshold == 0 {
		cfg.Alerts.ScoreThreshold = 80
	}
	if cfg.Alerts.MaxKept == 0 {
		cfg.Alerts.MaxKept = 60
	}
	if cfg.Scan.Cron == "" {
		cfg.Scan.Cron = "0 * * * * *"
	}
	if cfg.Scan.Concurrency == 0 {
		cfg.Scan.Concurrency = 4
	}
	if cfg.DataSource.Kind == "" {
		cfg.DataSource.Kind = "mock"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must not be empty")
	}
	if !strategy.HasPreset(c.Preset) {
		return fmt.Errorf("unknown preset %q (available: %s)",
			c.Preset, strings.Join(strategy.PresetNames(), ", "))
	}
	if c.LookbackBars < 0 {
		return fmt.Errorf("lookback_bars must not be negative")
	}
	if c.Alerts.CooldownMinutes < 0 {
		return fmt.Errorf("alerts.cooldown_minutes must not be negative")
	}
	if c.Scan.Concurrency < 1 {
		return fmt.Errorf("scan.concurrency must be at least 1")
	}
	switch c.DataSource.Kind {
	case "mock":
	case "replay":
		if c.DataSource.ReplayDir == "" {
			return fmt.Errorf("data_source.replay_dir is required for replay source")
		}
	default:
		return fmt.Errorf("unknown data_source.kind %q", c.DataSource.Kind)
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
