package cmd

import (
	"fmt"

	"github.com/bnema/mllib-cli/internal/adapters/render/catalogview"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the install journal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.service.History(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := catalogview.RenderHistory(records)
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "journal: %s\n", app.journal.Path())
			return err
		},
	}
}
