// Package config handles tint configuration loading and validation.
package config

import (
	"fmt"
	"time"

	"github.com/tOgg1/tint/internal/colormode"
)

// Config is the root configuration structure for tint.
type Config struct {
	// Appearance settings
	Appearance AppearanceConfig `yaml:"appearance" mapstructure:"appearance"`

	// Ambient detection settings
	Ambient AmbientConfig `yaml:"ambient" mapstructure:"ambient"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// AppearanceConfig contains theme and color-mode settings.
type AppearanceConfig struct {
	// ThemeFile is an optional YAML theme file merged onto the
	// built-in default theme.
	ThemeFile string `yaml:"theme_file" mapstructure:"theme_file"`

	// ColorMode is the color-mode intent (day, night, auto).
	ColorMode string `yaml:"color_mode" mapstructure:"color_mode"`

	// DayScheme names the scheme used when polarity resolves to day.
	DayScheme string `yaml:"day_scheme" mapstructure:"day_scheme"`

	// NightScheme names the scheme used when polarity resolves to night.
	NightScheme string `yaml:"night_scheme" mapstructure:"night_scheme"`
}

// AmbientConfig contains ambient preference detection settings.
type AmbientConfig struct {
	// PollInterval is how often the environment is re-probed.
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`

	// EnableCaller adds caller information to logs.
	EnableCaller bool `yaml:"enable_caller" mapstructure:"enable_caller"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			ColorMode: string(colormode.ModeAuto),
		},
		Ambient: AmbientConfig{
			PollInterval: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:        "info",
			Format:       "console",
			EnableCaller: false,
		},
	}
}

// Validate checks the configuration for errors. An invalid color mode
// is rejected here, at the boundary, rather than coerced later.
func (c *Config) Validate() error {
	if _, err := colormode.ParseMode(c.Appearance.ColorMode); err != nil {
		return fmt.Errorf("appearance.color_mode: %w", err)
	}

	if c.Ambient.PollInterval < 100*time.Millisecond {
		return fmt.Errorf("ambient.poll_interval must be at least 100ms")
	}

	return nil
}

// ColorMode returns the validated color mode.
func (c *Config) ColorMode() colormode.Mode {
	mode, err := colormode.ParseMode(c.Appearance.ColorMode)
	if err != nil {
		return colormode.ModeDay
	}
	return mode
}
