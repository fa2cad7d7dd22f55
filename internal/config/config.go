// Package config reads the optional user config at
// ~/.config/traino/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure of config.yaml. Every field is
// optional; zero values mean "use the built-in default" (or, for the
// provider, environment discovery).
type Config struct {
	Provider string      `yaml:"provider"` // anthropic | openai | gemini | openrouter | offline
	Model    string      `yaml:"model"`
	DBPath   string      `yaml:"db_path"`
	Coach    CoachConfig `yaml:"coach"`
}

// CoachConfig shapes the coach persona.
type CoachConfig struct {
	Name  string `yaml:"name"`
	Style string `yaml:"style"`
}

const (
	configDirName = "traino"
	configFile    = "config.yaml"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Coach: CoachConfig{
			Name:  "Trainer Max",
			Style: "encouraging, direct, practical",
		},
	}
}

// Path returns the config file location:
// $XDG_CONFIG_HOME/traino/config.yaml, falling back to
// ~/.config/traino/config.yaml.
func Path() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, configDirName, configFile), nil
}

// Load reads the config file. A missing file yields the defaults; a
// malformed one is an error so a typo never silently reverts settings.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file at an explicit path, applying defaults
// for absent fields.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Coach.Name == "" {
		cfg.Coach.Name = Default().Coach.Name
	}
	if cfg.Coach.Style == "" {
		cfg.Coach.Style = Default().Coach.Style
	}
	return cfg, nil
}
