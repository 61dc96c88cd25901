package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the calculator's configuration
type Config struct {
	Prompt   string `json:"prompt"`    // shown before each line on an interactive terminal
	Color    string `json:"color"`     // auto, always, never
	LogLevel string `json:"log_level"` // debug, verbose, info, warning, error
	Greeting bool   `json:"greeting"`  // print the banner on an interactive terminal
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Prompt:   "> ",
		Color:    ColorAuto,
		LogLevel: "info",
		Greeting: true,
	}
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return config, nil
		}
		return nil, err
	}

	// Unmarshal into default config (overrides only provided fields)
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if config.Color == "" {
		config.Color = ColorAuto
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Validate checks fields that have a fixed set of values.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want %s, %s, or %s)", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
}

// UseColor resolves the color mode given whether output is a terminal.
func (c *Config) UseColor(terminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetConfigPath returns the default config path
func GetConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, "smartcalc", "config.json")
}
