package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig is the optional on-disk configuration, read from
// $XDG_CONFIG_HOME/plume/config.toml. Zero values defer to the built-in
// defaults; LineNumbers is a pointer so an explicit "false" survives
// decoding.
type fileConfig struct {
	LineNumbers  *bool `toml:"line_numbers"`
	TabWidth     int   `toml:"tab_width"`
	HistoryLimit int   `toml:"history_limit"`
}

func (c fileConfig) lineNumbers() bool {
	if c.LineNumbers == nil {
		return true
	}
	return *c.LineNumbers
}

// configPath resolves the config file location, honoring XDG_CONFIG_HOME
// and falling back to ~/.config.
func configPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "plume", "config.toml")
}

// loadConfig reads the config file. A missing file is not an error; the
// zero config stands in for it.
func loadConfig() (fileConfig, error) {
	path := configPath()
	if path == "" {
		return fileConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(path, data)
}

func parseConfig(path string, data []byte) (fileConfig, error) {
	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
