package cmd

import (
	"fmt"

	"github.com/bnema/mllib-cli/internal/adapters/render/catalogview"
	"github.com/spf13/cobra"
)

func newInfoCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <library>",
		Short: "Show one catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			library, err := app.service.Describe(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rendered, err := catalogview.RenderLibrary(library)
			if err != nil {
				return fmt.Errorf("render library: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}
