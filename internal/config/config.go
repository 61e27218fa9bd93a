package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/tres/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// ColorScheme is re-exported so callers only need this package
type ColorScheme = colors.ColorScheme

// Config represents the application configuration.
// It holds presentation settings only; board contents are never stored here.
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// Load reads the config at path, or at DefaultPath when path is empty.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			// Return default config if we can't determine config path
			return Default(), nil
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// MergeThemeFile loads a standalone theme file and overrides the color scheme with it
func (c *Config) MergeThemeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme file: %w", err)
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}
	if err := yaml.Unmarshal(data, &themeConfig); err != nil {
		return fmt.Errorf("failed to parse theme file: %w", err)
	}

	// A preset switch rebases every color that the file does not override
	if themeConfig.Theme.Preset != "" && themeConfig.Theme.Preset != c.ColorScheme.Preset {
		c.ColorScheme = *colors.GetPreset(themeConfig.Theme.Preset)
	}
	c.ColorScheme.MergeFrom(themeConfig.Theme)
	return nil
}

// Save writes the config to path, or to DefaultPath when path is empty
func (c *Config) Save(path string) error {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Marshal renders the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tres", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tres", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
