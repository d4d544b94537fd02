package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Contains(t, cfg.Storage.Path, "presets.json")
	assert.Equal(t, "dark", cfg.TUI.Theme)
	assert.Equal(t, 60, cfg.TUI.PreviewWidth)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromPath_CreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	// The file was written with defaults so the next load sees it.
	_, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "dark", cfg.TUI.Theme)
}

func TestLoadFromPath_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `storage:
  backend: sqlite
  path: /tmp/aituner-test/presets.db
tui:
  theme: light
  preview_width: 80
logging:
  level: debug
  file: ""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "light", cfg.TUI.Theme)
	assert.Equal(t, 80, cfg.TUI.PreviewWidth)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromPath_EnvOverride(t *testing.T) {
	t.Setenv("AITUNER_STORAGE_BACKEND", "sqlite")

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"bad backend", func(c *Config) { c.Storage.Backend = "redis" }, "storage backend"},
		{"empty path", func(c *Config) { c.Storage.Path = "" }, "storage.path"},
		{"bad theme", func(c *Config) { c.TUI.Theme = "solarized" }, "theme"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".aituner"), expandPath("~/.aituner"))
	assert.Equal(t, "/etc/aituner.yaml", expandPath("/etc/aituner.yaml"))
}
