package cmd

import (
	"github.com/iwat/quotefix/internal/infrastructure/tui"
	"github.com/spf13/cobra"
)

func historyCmd(appBuilder *AppBuilder) *cobra.Command {
	var path string
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded fix runs",
		Long:  "List the fix runs recorded in the run journal, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			app, err := appBuilder.App(cmd.Context())
			if err != nil {
				return err
			}
			runs, err := app.History(cmd.Context(), path)
			if err != nil {
				return err
			}

			console := tui.NewConsole(cmd.OutOrStdout())
			if len(runs) == 0 {
				console.Line("No fix runs recorded")
				return nil
			}
			for _, run := range runs {
				console.Line(run)
			}
			return nil
		},
	}
	historyCmd.Flags().StringVar(&path, "path", "", "Only list runs over this file")

	return historyCmd
}
