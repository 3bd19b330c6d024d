package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/tint/internal/colormode"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, colormode.ModeAuto, cfg.ColorMode())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(*Config) {},
		},
		{
			name:    "invalid color mode is rejected, not coerced",
			mutate:  func(c *Config) { c.Appearance.ColorMode = "dark" },
			wantErr: "appearance.color_mode",
		},
		{
			name:    "empty color mode is rejected",
			mutate:  func(c *Config) { c.Appearance.ColorMode = "" },
			wantErr: "appearance.color_mode",
		},
		{
			name:    "poll interval below 100ms is rejected",
			mutate:  func(c *Config) { c.Ambient.PollInterval = 50 * time.Millisecond },
			wantErr: "ambient.poll_interval",
		},
		{
			name:   "explicit day mode passes",
			mutate: func(c *Config) { c.Appearance.ColorMode = "day" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
