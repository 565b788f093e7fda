package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iwat/quotefix/internal/domain"
)

// DefaultTarget is the file fixed when no path is given
const DefaultTarget = "routes/mockInterview.js"

// FixRequest describes a single fix of one file
type FixRequest struct {
	Path     string
	Encoding string
	DryRun   bool
}

// FixResult reports what a fix did
type FixResult struct {
	Path     string
	Encoding string
	Replaced int
	Written  bool
	Run      *domain.FixRun
}

// FixQuotes replaces every escaped quote in the requested file with a plain
// quote and writes the file back in the same encoding. Nothing is written
// when reading, decoding or encoding fails, on a dry run, or when the
// content has no escaped quotes.
func (app *App) FixQuotes(ctx context.Context, req *FixRequest) (*FixResult, error) {
	path := req.Path
	if path == "" {
		path = DefaultTarget
	}
	label := req.Encoding
	if label == "" {
		label = domain.DefaultEncoding
	}

	enc, err := domain.LookupEncoding(label)
	if err != nil {
		return nil, err
	}

	before, err := app.fileReader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	slog.Debug("read file", "path", path, "bytes", len(before))

	content, err := enc.Decode(before)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	fixed, replaced := domain.UnescapeQuotes(content)
	slog.Debug("replaced escaped quotes", "path", path, "encoding", enc.String(), "replaced", replaced)

	after, err := enc.Encode(fixed)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", path, err)
	}

	result := &FixResult{
		Path:     path,
		Encoding: enc.String(),
		Replaced: replaced,
	}

	if !req.DryRun && replaced > 0 {
		if err := app.fileWriter.WriteFile(path, after, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		result.Written = true
		slog.Debug("wrote file", "path", path, "bytes", len(after))
	}

	if app.journal != nil {
		run := domain.NewFixRun(path, enc.String(), replaced, before, after, req.DryRun, result.Written)
		// The file is already fixed at this point, a lost journal row must not fail the run.
		result.Run, err = app.journal.CreateFixRun(ctx, run)
		if err != nil {
			slog.Warn("failed to record fix run", "path", path, "error", err)
		}
	}

	return result, nil
}
