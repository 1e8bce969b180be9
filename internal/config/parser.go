package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/extdeck/internal/kvstore"
	exterrors "github.com/alexisbeaulieu97/extdeck/pkg/errors"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "EXTDECK_"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Preferences:   PreferencesConfig{Backend: kvstore.BackendJSON},
		LogLevel:      "info",
		ConfirmRemove: true,
		Unicode:       UnicodeAuto,
	}
}

// Load reads path (a missing file yields Default), applies EXTDECK_* overrides
// from the process environment, fills derived paths under dir and validates.
func Load(path, dir string) (*Config, error) {
	return LoadWithEnv(path, dir, nil)
}

// LoadWithEnv is Load with an explicit environment; nil means os.Environ.
func LoadWithEnv(path, dir string, environ map[string]string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, exterrors.NewParseError(path, extractLine(err), err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, exterrors.NewParseError(path, 0, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return nil, exterrors.NewParseError("environment", 0, err)
	}

	cfg.resolvePaths(dir)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) resolvePaths(dir string) {
	if c.Preferences.Backend == "" {
		c.Preferences.Backend = kvstore.BackendJSON
	}
	c.Preferences.Backend = strings.ToLower(c.Preferences.Backend)

	if c.Preferences.Path == "" {
		name := "preferences.json"
		if c.Preferences.Backend == kvstore.BackendSQLite {
			name = "preferences.db"
		}
		c.Preferences.Path = filepath.Join(dir, name)
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(dir, "extdeck.log")
	}

	c.Preferences.Path = expandHome(c.Preferences.Path)
	c.LogFile = expandHome(c.LogFile)
	c.CatalogFile = expandHome(c.CatalogFile)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
