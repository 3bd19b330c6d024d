package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	loader := NewLoader()
	// Point every search path at an empty directory.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "auto", cfg.Appearance.ColorMode)
	require.Equal(t, 5*time.Second, cfg.Ambient.PollInterval)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadExplicitConfigFile(t *testing.T) {
	path := writeConfig(t, `
appearance:
  color_mode: night
  night_scheme: dark_dimmed
ambient:
  poll_interval: 2s
logging:
  level: debug
`)

	loader := NewLoader()
	loader.SetConfigFile(path)

	cfg, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "night", cfg.Appearance.ColorMode)
	require.Equal(t, "dark_dimmed", cfg.Appearance.NightScheme)
	require.Equal(t, 2*time.Second, cfg.Ambient.PollInterval)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalidColorMode(t *testing.T) {
	path := writeConfig(t, `
appearance:
  color_mode: dusk
`)

	loader := NewLoader()
	loader.SetConfigFile(path)

	_, err := loader.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid color mode")
}

func TestLoadMissingExplicitFileErrors(t *testing.T) {
	loader := NewLoader()
	loader.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := loader.Load()
	require.Error(t, err)
}
