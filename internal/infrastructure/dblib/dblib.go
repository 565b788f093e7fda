package dblib

import "context"

//go:generate sqlc generate

const schemaDefinition = `
CREATE TABLE IF NOT EXISTS fix_run (
	id INTEGER PRIMARY KEY,
	path TEXT NOT NULL,
	encoding TEXT NOT NULL,
	replaced INTEGER NOT NULL,
	bytes_before INTEGER NOT NULL,
	bytes_after INTEGER NOT NULL,
	digest_before TEXT NOT NULL,
	digest_after TEXT NOT NULL,
	dry_run INTEGER NOT NULL,
	written INTEGER NOT NULL DEFAULT 0,
	fixed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fix_run_path ON fix_run (path);
`

func (q *Queries) InitializeDatabase(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, schemaDefinition)
	return err
}
