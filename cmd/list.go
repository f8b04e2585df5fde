package cmd

import (
	"fmt"

	"github.com/bnema/mllib-cli/internal/adapters/render/catalogview"
	"github.com/bnema/mllib-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog libraries with size estimates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if category != "" {
				view, err := app.service.CategoryView(cmd.Context(), domain.Category(category))
				if err != nil {
					return err
				}

				rendered, err := catalogview.RenderCategory(view)
				if err != nil {
					return fmt.Errorf("render category: %w", err)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return err
			}

			overview, err := app.service.Overview(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := catalogview.RenderOverview(overview)
			if err != nil {
				return fmt.Errorf("render catalog: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Limit output to one category (core, visualization, nlp)")

	return cmd
}
