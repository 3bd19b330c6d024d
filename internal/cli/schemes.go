package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tOgg1/tint/internal/theme"
)

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the color schemes declared by the effective theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			base := theme.Default()
			if cfg.Appearance.ThemeFile != "" {
				override, err := theme.Load(cfg.Appearance.ThemeFile)
				if err != nil {
					return err
				}
				base = theme.Merge(base, override)
			}

			table := base.Schemes()
			if len(table) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No color schemes declared.")
				return nil
			}

			names := make([]string, 0, len(table))
			for name := range table {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
