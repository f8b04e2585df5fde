package cmd

import (
	"github.com/bnema/mllib-cli/internal/adapters/menu"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively and install libraries",
		RunE:  browseRunE(app),
	}
}

func browseRunE(app *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return menu.Run(cmd.Context(), app.service, cmd.InOrStdin(), cmd.OutOrStdout())
	}
}
