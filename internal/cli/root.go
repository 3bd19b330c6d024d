// Package cli provides the tint command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tOgg1/tint/internal/ambient"
	"github.com/tOgg1/tint/internal/config"
	"github.com/tOgg1/tint/internal/logging"
	"github.com/tOgg1/tint/internal/provider"
	"github.com/tOgg1/tint/internal/theme"
	"github.com/tOgg1/tint/internal/tui"
)

// Execute runs the tint CLI.
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tint",
		Short:         "Theme resolution and color-mode switching for terminal UIs",
		Long:          "tint resolves nested design-token themes against named color schemes and a day/night/auto color mode, and previews the result live.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, monitor, err := buildScope(cmd)
			if err != nil {
				return err
			}
			defer scope.Close()

			if err := monitor.Start(context.Background()); err != nil {
				return err
			}
			defer func() { _ = monitor.Stop() }()

			return tui.Run(tui.Config{Scope: scope})
		},
	}

	cmd.PersistentFlags().String("config", "", "config file path")
	cmd.PersistentFlags().String("theme", "", "YAML theme file merged onto the built-in theme")
	cmd.PersistentFlags().String("color-mode", "", "color mode (day, night, auto)")
	cmd.PersistentFlags().String("day-scheme", "", "scheme name used when polarity resolves to day")
	cmd.PersistentFlags().String("night-scheme", "", "scheme name used when polarity resolves to night")
	cmd.PersistentFlags().String("log-level", "", "minimum log level (debug, info, warn, error)")

	cmd.AddCommand(
		newResolveCmd(),
		newSchemesCmd(),
	)

	return cmd
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loader := config.NewLoader()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader.SetConfigFile(path)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("theme"); v != "" {
		cfg.Appearance.ThemeFile = v
	}
	if v, _ := cmd.Flags().GetString("color-mode"); v != "" {
		cfg.Appearance.ColorMode = v
	}
	if v, _ := cmd.Flags().GetString("day-scheme"); v != "" {
		cfg.Appearance.DayScheme = v
	}
	if v, _ := cmd.Flags().GetString("night-scheme"); v != "" {
		cfg.Appearance.NightScheme = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Init(logging.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.EnableCaller,
	})

	return cfg, nil
}

// buildScope assembles the outermost scope from configuration: theme
// file, color mode, scheme overrides, and the ambient monitor.
func buildScope(cmd *cobra.Command) (*provider.Scope, *ambient.Monitor, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	var override theme.Theme
	if cfg.Appearance.ThemeFile != "" {
		override, err = theme.Load(cfg.Appearance.ThemeFile)
		if err != nil {
			return nil, nil, err
		}
	}

	monitor := ambient.NewMonitor(ambient.MonitorConfig{
		Interval: cfg.Ambient.PollInterval,
	})

	scope, err := provider.New(nil, provider.Options{
		Theme:       override,
		ColorMode:   cfg.ColorMode(),
		DayScheme:   cfg.Appearance.DayScheme,
		NightScheme: cfg.Appearance.NightScheme,
		Ambient:     monitor,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create scope: %w", err)
	}

	return scope, monitor, nil
}
