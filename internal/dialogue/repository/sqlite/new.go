package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"cognitive-router/internal/dialogue/repository"
	pkgLog "cognitive-router/pkg/log"
	pkgSqlite "cognitive-router/pkg/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS dialogue_stacks (
		user_id    TEXT    NOT NULL,
		session_id TEXT    NOT NULL,
		payload    BLOB    NOT NULL,
		version    INTEGER NOT NULL,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (user_id, session_id)
	)`

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a SQLite-backed context store, creating its table if needed.
func New(ctx context.Context, db *sql.DB, l pkgLog.Logger) (repository.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("dialogue/repository/sqlite: db is required")
	}
	if err := pkgSqlite.Migrate(ctx, db, schema); err != nil {
		return nil, fmt.Errorf("dialogue/repository/sqlite: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dialogue/repository/sqlite.%s", method)
}
