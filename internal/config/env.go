package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"jordanella.com/campaign-options/internal/logging"
)

// AppConfig is the application configuration read from the environment.
// Paths left empty are placed under DataDir.
type AppConfig struct {
	DataDir     string `env:"CAMPAIGN_DATA_DIR"     envDefault:"data"`
	DBPath      string `env:"CAMPAIGN_DB_PATH"`
	PresetDir   string `env:"CAMPAIGN_PRESET_DIR"`
	LogDir      string `env:"CAMPAIGN_LOG_DIR"`
	LogLevel    string `env:"CAMPAIGN_LOG_LEVEL"    envDefault:"INFO"`
	OptionsFile string `env:"CAMPAIGN_OPTIONS_FILE"`
}

// LoadAppConfig reads the configuration from the process environment
func LoadAppConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.withDefaults(), nil
}

// LoadAppConfigFrom reads the configuration from the given variables only
func LoadAppConfigFrom(environ map[string]string) (AppConfig, error) {
	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.withDefaults(), nil
}

func (c AppConfig) withDefaults() AppConfig {
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, "campaigns.db")
	}
	if c.PresetDir == "" {
		c.PresetDir = filepath.Join(c.DataDir, "presets")
	}
	if c.LogDir == "" {
		c.LogDir = filepath.Join(c.DataDir, "logs")
	}
	return c
}

// Level returns the configured minimum log level
func (c AppConfig) Level() logging.LogLevel {
	return logging.ParseLevel(c.LogLevel)
}
