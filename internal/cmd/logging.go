package cmd

import (
	"io"
	"log/slog"
	"time"

	"github.com/iwat/quotefix/internal/infrastructure/tui"
	"github.com/lmittmann/tint"
)

var logLevel = new(slog.LevelVar)

// SetupLogging installs a tint handler writing to w as the default logger.
// Colors are only used when w is a terminal.
func SetupLogging(w io.Writer) {
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.Kitchen,
		NoColor:    !tui.IsTerminal(w),
	})))
}

func enableDebugLogging() {
	logLevel.Set(slog.LevelDebug)
}
