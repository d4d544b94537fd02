package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration for the AI Tuner.
// It is loaded from ~/.aituner/config.yaml and can be overridden by
// environment variables with the AITUNER_ prefix.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// StorageConfig controls how presets are persisted.
type StorageConfig struct {
	// Backend selects the preset store: "file" (JSON array) or "sqlite".
	Backend string `mapstructure:"backend" yaml:"backend"`
	// Path is the preset file or database path.
	Path string `mapstructure:"path" yaml:"path"`
}

// TUIConfig contains configuration for the terminal user interface.
type TUIConfig struct {
	// Theme is the UI theme ("dark" or "light")
	Theme string `mapstructure:"theme" yaml:"theme"`
	// PreviewWidth is the width of the prompt preview pane in characters
	PreviewWidth int `mapstructure:"preview_width" yaml:"preview_width"`
}

// LoggingConfig contains configuration for application logging.
type LoggingConfig struct {
	// Level is the log level ("debug", "info", "warn", "error")
	Level string `mapstructure:"level" yaml:"level"`
	// File is the path to the log file; empty logs to stderr only
	File string `mapstructure:"file" yaml:"file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".aituner")

	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Path:    filepath.Join(dataDir, "presets.json"),
		},
		TUI: TUIConfig{
			Theme:        "dark",
			PreviewWidth: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(dataDir, "logs", "aituner.log"),
		},
	}
}

// Load reads configuration from the default location (~/.aituner/config.yaml)
// and merges with environment variables. If no config file exists, it creates
// one with default values.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return LoadFromPath(filepath.Join(homeDir, ".aituner", "config.yaml"))
}

// LoadFromPath reads configuration from a specific file path and merges with
// environment variables. If the file doesn't exist, it creates one with
// default values.
func LoadFromPath(path string) (*Config, error) {
	path = expandPath(path)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := writeConfigFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Example: AITUNER_STORAGE_BACKEND=sqlite
	v.SetEnvPrefix("AITUNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Storage.Path = expandPath(cfg.Storage.Path)
	cfg.Logging.File = expandPath(cfg.Logging.File)

	return &cfg, nil
}

// DataDir returns the AI Tuner data directory path (~/.aituner).
func (c *Config) DataDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".aituner")
}

// EnsureDirectories creates the directories the application writes to.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.DataDir(),
		filepath.Dir(c.Storage.Path),
	}
	if c.Logging.File != "" {
		dirs = append(dirs, filepath.Dir(c.Logging.File))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Validate checks the configuration for common errors.
func (c *Config) Validate() error {
	if c.Storage.Backend != "file" && c.Storage.Backend != "sqlite" {
		return fmt.Errorf("invalid storage backend '%s', must be 'file' or 'sqlite'", c.Storage.Backend)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path cannot be empty")
	}

	if c.TUI.Theme != "dark" && c.TUI.Theme != "light" {
		return fmt.Errorf("invalid theme '%s', must be 'dark' or 'light'", c.TUI.Theme)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level '%s', must be one of: debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

// writeConfigFile writes a Config struct to a YAML file.
// Uses gopkg.in/yaml.v3 directly to ensure proper tag-based serialization.
func writeConfigFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// expandPath expands ~ to the user's home directory in a path string.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
