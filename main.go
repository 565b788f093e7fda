package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/iwat/quotefix/internal/cmd"
	"github.com/iwat/quotefix/internal/infrastructure/fsio"
)

func main() {
	cmd.SetupLogging(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	files := fsio.NewOS()
	appBuilder := cmd.NewAppBuilder().WithFileReader(files).WithFileWriter(files)

	err := cmd.RootCmd(appBuilder).ExecuteContext(ctx)
	if closeErr := appBuilder.Close(); closeErr != nil {
		slog.Debug("failed to close run journal", "error", closeErr)
	}
	stop()
	if err != nil {
		slog.Error("quotefix failed", "error", err)
		os.Exit(1)
	}
}
