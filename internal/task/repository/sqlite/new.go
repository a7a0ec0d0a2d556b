package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cognitive-router/internal/task/repository"
	pkgLog "cognitive-router/pkg/log"
	pkgSqlite "cognitive-router/pkg/sqlite"
)

const (
	schemaTasks = `
	CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		owner_id    TEXT NOT NULL,
		description TEXT NOT NULL,
		status      TEXT NOT NULL,
		due_at      TEXT,
		created_at  TEXT NOT NULL
	)`
	schemaTasksOwnerIdx = `CREATE INDEX IF NOT EXISTS idx_tasks_owner_status ON tasks (owner_id, status)`
)

type implRepository struct {
	db    *sql.DB
	l     pkgLog.Logger
	now   func() time.Time
	newID func() string
}

// New creates a SQLite-backed task repository, creating its table if needed.
func New(ctx context.Context, db *sql.DB, l pkgLog.Logger) (repository.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("task/repository/sqlite: db is required")
	}
	if err := pkgSqlite.Migrate(ctx, db, schemaTasks, schemaTasksOwnerIdx); err != nil {
		return nil, fmt.Errorf("task/repository/sqlite: %w", err)
	}
	return &implRepository{
		db:    db,
		l:     l,
		now:   time.Now,
		newID: uuid.NewString,
	}, nil
}
