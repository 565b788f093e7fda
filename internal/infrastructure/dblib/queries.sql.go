package dblib

import (
	"context"

	"github.com/iwat/quotefix/internal/domain"
)

const createFixRun = `-- name: CreateFixRun :one
INSERT INTO fix_run (
    path, encoding, replaced, bytes_before, bytes_after,
    digest_before, digest_after, dry_run, written, fixed_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id
`

func (q *Queries) CreateFixRun(ctx context.Context, run *domain.FixRun) (*domain.FixRun, error) {
	row := q.db.QueryRowContext(ctx, createFixRun,
		run.Path,
		run.Encoding,
		run.Replaced,
		run.BytesBefore,
		run.BytesAfter,
		run.DigestBefore,
		run.DigestAfter,
		run.DryRun,
		run.Written,
		run.FixedAt,
	)
	if err := row.Scan(&run.ID); err != nil {
		return nil, err
	}
	return run, nil
}

const allFixRuns = `-- name: AllFixRuns :many
SELECT
    id, path, encoding, replaced, bytes_before, bytes_after,
    digest_before, digest_after, dry_run, written, fixed_at
FROM fix_run
ORDER BY id
`

func (q *Queries) AllFixRuns(ctx context.Context) ([]*domain.FixRun, error) {
	rows, err := q.db.QueryContext(ctx, allFixRuns)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*domain.FixRun
	for rows.Next() {
		var i domain.FixRun
		if err := rows.Scan(
			&i.ID,
			&i.Path,
			&i.Encoding,
			&i.Replaced,
			&i.BytesBefore,
			&i.BytesAfter,
			&i.DigestBefore,
			&i.DigestAfter,
			&i.DryRun,
			&i.Written,
			&i.FixedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const fixRunsByPath = `-- name: FixRunsByPath :many
SELECT
    id, path, encoding, replaced, bytes_before, bytes_after,
    digest_before, digest_after, dry_run, written, fixed_at
FROM fix_run
WHERE path = ?
ORDER BY id
`

func (q *Queries) FixRunsByPath(ctx context.Context, path string) ([]*domain.FixRun, error) {
	rows, err := q.db.QueryContext(ctx, fixRunsByPath, path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*domain.FixRun
	for rows.Next() {
		var i domain.FixRun
		if err := rows.Scan(
			&i.ID,
			&i.Path,
			&i.Encoding,
			&i.Replaced,
			&i.BytesBefore,
			&i.BytesAfter,
			&i.DigestBefore,
			&i.DigestAfter,
			&i.DryRun,
			&i.Written,
			&i.FixedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
