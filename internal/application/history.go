package application

import (
	"context"
	"fmt"

	"github.com/iwat/quotefix/internal/domain"
)

// History lists the recorded fix runs, oldest first. A non-empty path
// restricts the list to runs over that file.
func (app *App) History(ctx context.Context, path string) ([]*domain.FixRun, error) {
	if app.journal == nil {
		return nil, ErrJournalDisabled
	}

	var (
		runs []*domain.FixRun
		err  error
	)
	if path == "" {
		runs, err = app.journal.AllFixRuns(ctx)
	} else {
		runs, err = app.journal.FixRunsByPath(ctx, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load fix runs: %v", err)
	}
	return runs, nil
}
