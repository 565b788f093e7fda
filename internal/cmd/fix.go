package cmd

import (
	"path/filepath"

	"github.com/iwat/quotefix/internal/application"
	"github.com/iwat/quotefix/internal/domain"
	"github.com/iwat/quotefix/internal/infrastructure/tui"
	"github.com/spf13/cobra"
)

func fixCmd(appBuilder *AppBuilder) *cobra.Command {
	var req application.FixRequest
	fixCmd := &cobra.Command{
		Use:   "quotefix [file]",
		Short: "Fix escaped double quotes in a text file",
		Long: `Replaces every escaped double quote (\") in a text file with a plain
double quote (") and writes the file back atomically in the same encoding.

Without a file argument, ` + application.DefaultTarget + ` is fixed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 1 {
				req.Path = args[0]
			}

			app, err := appBuilder.App(cmd.Context())
			if err != nil {
				return err
			}
			result, err := app.FixQuotes(cmd.Context(), &req)
			if err != nil {
				return err
			}

			console := tui.NewConsole(cmd.OutOrStdout())
			name := filepath.Base(result.Path)
			if req.DryRun {
				console.DryRun(name, result.Replaced)
			} else {
				console.Fixed(name)
			}
			return nil
		},
	}
	fixCmd.Flags().StringVar(&req.Encoding, "encoding", domain.DefaultEncoding, "Text encoding of the file")
	fixCmd.Flags().BoolVar(&req.DryRun, "dry-run", false, "Only report what would be replaced; do not modify the file")

	return fixCmd
}
