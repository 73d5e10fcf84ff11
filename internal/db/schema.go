package db

import "context"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS scheduled_posts (
		id TEXT PRIMARY KEY,
		platform TEXT NOT NULL,
		caption TEXT NOT NULL,
		scheduled_at TIMESTAMPTZ NOT NULL,
		link_or_asset_note TEXT,
		is_posted BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_posts_platform ON scheduled_posts (platform)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_posts_scheduled_at ON scheduled_posts (scheduled_at)`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		username TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables the dashboard needs. Statements are
// idempotent so it runs unconditionally at startup.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
