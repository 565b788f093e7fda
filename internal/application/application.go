package application

import (
	"context"
	"errors"

	"github.com/iwat/quotefix/internal/domain"
)

var ErrJournalDisabled = errors.New("run journal is disabled, pass --db or set QUOTEFIX_DB")

type App struct {
	journal    Journal
	fileReader FileReader
	fileWriter FileWriter
}

// NewApp creates an App. journal may be nil, in which case runs are not recorded.
func NewApp(journal Journal, fileReader FileReader, fileWriter FileWriter) *App {
	return &App{
		journal:    journal,
		fileReader: fileReader,
		fileWriter: fileWriter,
	}
}

func (app *App) Initialize(ctx context.Context) error {
	if app.journal == nil {
		return nil
	}
	return app.journal.InitializeDatabase(ctx)
}

// Journal stores the history of fix runs
type Journal interface {
	InitializeDatabase(ctx context.Context) error
	CreateFixRun(ctx context.Context, run *domain.FixRun) (*domain.FixRun, error)
	AllFixRuns(ctx context.Context) ([]*domain.FixRun, error)
	FixRunsByPath(ctx context.Context, path string) ([]*domain.FixRun, error)
}
