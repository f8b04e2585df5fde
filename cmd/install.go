package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/mllib-cli/internal/adapters/render/catalogview"
	"github.com/bnema/mllib-cli/internal/application"
	"github.com/bnema/mllib-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errInstallFailed = errors.New("one or more installs failed")

func newInstallCmd(app *app) *cobra.Command {
	var (
		category   string
		all        bool
		skipPrompt bool
	)

	cmd := &cobra.Command{
		Use:   "install [library...]",
		Short: "Install libraries through the host package manager",
		Args: func(_ *cobra.Command, args []string) error {
			selections := 0
			if len(args) > 0 {
				selections++
			}
			if category != "" {
				selections++
			}
			if all {
				selections++
			}
			if selections != 1 {
				return fmt.Errorf("select exactly one of: library names, --category, or --all")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := resolveSelection(cmd.Context(), app.service, args, category, all)
			if err != nil {
				return err
			}

			if !skipPrompt {
				confirmed, err := confirm(cmd, selection)
				if err != nil {
					return err
				}
				if !confirmed {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return err
				}
			}

			var reports []application.InstallReport
			label := fmt.Sprintf("Installing %d libraries...", len(selection.names))
			if len(selection.names) == 1 {
				label = fmt.Sprintf("Installing %s...", selection.names[0])
			}

			err = runInstallSpinner(cmd.Context(), cmd.OutOrStdout(), label, func(ctx context.Context) error {
				var installErr error
				reports, installErr = app.service.InstallLibraries(ctx, selection.names)
				return installErr
			})
			if err != nil {
				return err
			}

			rendered, err := catalogview.RenderReports(reports)
			if err != nil {
				return fmt.Errorf("render install reports: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
				return err
			}

			for _, report := range reports {
				if !report.Succeeded() {
					return errInstallFailed
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Install every library in one category (core, visualization, nlp)")
	cmd.Flags().BoolVar(&all, "all", false, "Install every library in the catalog")
	cmd.Flags().BoolVarP(&skipPrompt, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

type installSelection struct {
	names   []string
	totalMB float64
}

func resolveSelection(ctx context.Context, service *application.Service, args []string, category string, all bool) (installSelection, error) {
	var libraries []domain.Library

	switch {
	case all:
		overview, err := service.Overview(ctx)
		if err != nil {
			return installSelection{}, err
		}
		for _, view := range overview.Categories {
			libraries = append(libraries, view.Libraries...)
		}
	case category != "":
		view, err := service.CategoryView(ctx, domain.Category(category))
		if err != nil {
			return installSelection{}, err
		}
		libraries = view.Libraries
	default:
		for _, name := range args {
			library, err := service.Describe(ctx, name)
			if err != nil {
				return installSelection{}, err
			}
			libraries = append(libraries, library)
		}
	}

	selection := installSelection{totalMB: domain.TotalSizeMB(libraries)}
	for _, library := range libraries {
		selection.names = append(selection.names, library.Name)
	}

	return selection, nil
}

func confirm(cmd *cobra.Command, selection installSelection) (bool, error) {
	prompt := fmt.Sprintf("Install %s? Size: %s (y/N): ",
		strings.Join(selection.names, ", "), domain.FormatSize(selection.totalMB))
	if _, err := fmt.Fprint(cmd.OutOrStdout(), prompt); err != nil {
		return false, err
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return false, nil
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
