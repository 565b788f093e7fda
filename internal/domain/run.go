package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// FixRun records one pass of the quote fixer over a file
type FixRun struct {
	ID           int
	Path         string
	Encoding     string
	Replaced     int
	BytesBefore  int
	BytesAfter   int
	DigestBefore string
	DigestAfter  string
	DryRun       bool
	Written      bool
	FixedAt      time.Time
}

// NewFixRun creates a FixRun from the raw file bytes before and after the fix.
// The ID stays -1 until the run is stored.
func NewFixRun(path, encoding string, replaced int, before, after []byte, dryRun, written bool) *FixRun {
	return &FixRun{
		ID:           -1,
		Path:         path,
		Encoding:     encoding,
		Replaced:     replaced,
		BytesBefore:  len(before),
		BytesAfter:   len(after),
		DigestBefore: Digest(before),
		DigestAfter:  Digest(after),
		DryRun:       dryRun,
		Written:      written,
		FixedAt:      time.Now().UTC(),
	}
}

// Digest returns the hex encoded SHA-256 of data
func Digest(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (r *FixRun) String() string {
	var mode string
	switch {
	case r.DryRun:
		mode = "dry-run"
	case r.Written:
		mode = "fixed"
	default:
		mode = "unchanged"
	}
	return fmt.Sprintf("%d) %s %s [%s] %d replaced, %d -> %d bytes (%s)",
		r.ID, r.FixedAt.Format(time.RFC3339), r.Path, r.Encoding,
		r.Replaced, r.BytesBefore, r.BytesAfter, mode)
}
