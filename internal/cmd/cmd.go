package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwat/quotefix/internal/application"
	"github.com/iwat/quotefix/internal/infrastructure/dblib"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	_ "github.com/mattn/go-sqlite3"
)

// dbEnvVar names the environment variable holding the default journal path
const dbEnvVar = "QUOTEFIX_DB"

type AppBuilder struct {
	dbPath     string
	fileReader application.FileReader
	fileWriter application.FileWriter
	db         *sql.DB
	app        *application.App
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{}
}

func (b *AppBuilder) WithDBPath(path string) *AppBuilder {
	b.dbPath = path
	return b
}

func (b *AppBuilder) WithFileReader(reader application.FileReader) *AppBuilder {
	b.fileReader = reader
	return b
}

func (b *AppBuilder) WithFileWriter(writer application.FileWriter) *AppBuilder {
	b.fileWriter = writer
	return b
}

func (b *AppBuilder) Build() error {
	var journal application.Journal
	if b.dbPath != "" {
		dir := filepath.Dir(b.dbPath)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}

		db, err := sql.Open("sqlite3", b.dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database %s: %w", b.dbPath, err)
		}
		b.db = db
		journal = dblib.New(db)
	}
	b.app = application.NewApp(journal, b.fileReader, b.fileWriter)
	return nil
}

func (b *AppBuilder) App(ctx context.Context) (*application.App, error) {
	if err := b.app.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return b.app, nil
}

// Close releases the journal database, if one was opened
func (b *AppBuilder) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

func RootCmd(appBuilder *AppBuilder) *cobra.Command {
	rootCmd := fixCmd(appBuilder)
	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			enableDebugLogging()
		}
		return appBuilder.WithDBPath(cmd.Flag("db").Value.String()).Build()
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return appBuilder.Close()
	}

	rootFlags := pflag.NewFlagSet("root", pflag.ContinueOnError)
	rootFlags.String("db", os.Getenv(dbEnvVar), "Path to SQLite run journal (default $"+dbEnvVar+", disabled when empty)")
	rootFlags.BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)

	rootCmd.AddCommand(historyCmd(appBuilder))

	return rootCmd
}
