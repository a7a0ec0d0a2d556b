package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"cognitive-router/internal/model"
	"cognitive-router/internal/task/repository"
)

const taskColumns = `id, owner_id, description, status, due_at, created_at`

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:          r.newID(),
		OwnerID:     opt.OwnerID,
		Description: opt.Description,
		Status:      model.TaskStatusPending,
		DueAt:       opt.DueAt,
		CreatedAt:   r.now().UTC(),
	}

	const query = `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.OwnerID, t.Description, string(t.Status), formatTime(t.DueAt), t.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.CreateTask: %v", err)
		return model.Task{}, fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, ownerID, id string) (model.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = ? AND id = ?`
	t, err := scanTask(r.db.QueryRowContext(ctx, query, ownerID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.GetTask: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	var (
		where = []string{"owner_id = ?"}
		args  = []any{opt.OwnerID}
	)
	if opt.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(opt.Status))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + strings.Join(where, " AND ") + ` ORDER BY rowid`
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.ListTasks: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return tasks, nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, opt repository.UpdateStatusOptions) (model.Task, error) {
	const query = `UPDATE tasks SET status = ? WHERE owner_id = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query, string(opt.Status), opt.OwnerID, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.UpdateStatus: %v", err)
		return model.Task{}, fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Task{}, repository.ErrNotFound
	}
	return r.GetTask(ctx, opt.OwnerID, opt.ID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t         model.Task
		status    string
		dueAt     sql.NullString
		createdAt string
	)
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Description, &status, &dueAt, &createdAt); err != nil {
		return model.Task{}, err
	}
	t.Status = model.TaskStatus(status)

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %s: bad created_at: %w", t.ID, err)
	}
	t.CreatedAt = created

	if dueAt.Valid {
		due, err := time.Parse(time.RFC3339Nano, dueAt.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %s: bad due_at: %w", t.ID, err)
		}
		t.DueAt = &due
	}
	return t, nil
}

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}
