package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <token-path>",
		Short: "Resolve a token path against the effective theme",
		Long:  "Resolve a dot-separated token path (e.g. colors.text) against the theme produced by the configured color mode and schemes.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, _, err := buildScope(cmd)
			if err != nil {
				return err
			}
			defer scope.Close()

			ctx := scope.Context()
			value, ok := ctx.Theme.Get(args[0])
			if !ok {
				return fmt.Errorf("token %q not found (mode %s, polarity %s)", args[0], ctx.Mode, ctx.Polarity)
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
