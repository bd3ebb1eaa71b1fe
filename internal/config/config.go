// Package config loads rubix settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds application settings.
type Config struct {
	// DBPath is the session database file.
	DBPath string `yaml:"db_path"`
	// Color enables colored sticker output.
	Color bool `yaml:"color"`
	// Glyph is drawn for each sticker when Color is on.
	Glyph string `yaml:"glyph"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// Dir returns the rubix settings directory in the user's home directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".rubix"), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the built-in settings.
func Default() *Config {
	cfg := &Config{
		Color:    true,
		Glyph:    "  ",
		LogLevel: "info",
	}
	if dir, err := Dir(); err == nil {
		cfg.DBPath = filepath.Join(dir, "rubix.db")
	}
	return cfg
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies RUBIX_DB, RUBIX_NO_COLOR and RUBIX_LOG_LEVEL.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("RUBIX_DB"); v != "" {
		c.DBPath = v
	}
	if os.Getenv("RUBIX_NO_COLOR") != "" {
		c.Color = false
	}
	if v := os.Getenv("RUBIX_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
