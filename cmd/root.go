package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mlc",
		Short:         "ML Library Installer (mlc): browse and install ML libraries",
		Long:          "mlc (ML Library Installer) presents a categorized catalog of machine-learning libraries with size estimates, installs them through the host package manager, and keeps an append-only log of every install attempt.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	// Launching with no arguments opens the interactive menu.
	rootCmd.RunE = browseRunE(app)

	rootCmd.AddCommand(
		newVersionCmd(),
		newBrowseCmd(app),
		newListCmd(app),
		newInfoCmd(app),
		newInstallCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
