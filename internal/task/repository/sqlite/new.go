package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"atrova/internal/task/repository"
	"atrova/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id                TEXT PRIMARY KEY,
	owner_id          TEXT NOT NULL,
	title             TEXT NOT NULL,
	due_at            INTEGER,
	completed         INTEGER NOT NULL DEFAULT 0,
	ai_scheduled      INTEGER NOT NULL DEFAULT 0,
	priority          TEXT NOT NULL DEFAULT 'medium',
	duration_minutes  INTEGER NOT NULL DEFAULT 0,
	source            TEXT NOT NULL DEFAULT 'api',
	calendar_event_id TEXT NOT NULL DEFAULT '',
	calendar_link     TEXT NOT NULL DEFAULT '',
	created_at        INTEGER NOT NULL,
	updated_at        INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks (owner_id, created_at);
CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks (completed, due_at);`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the task domain and makes sure the schema exists.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("task/repository/sqlite: create schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
