package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"cognitive-router/internal/model"
	"cognitive-router/internal/task/repository"
	pkgLog "cognitive-router/pkg/log"
	pkgSqlite "cognitive-router/pkg/sqlite"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	ctx := context.Background()

	db, err := pkgSqlite.Open(ctx, pkgSqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := New(ctx, db, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	impl := repo.(*implRepository)
	seq := 0
	impl.newID = func() string {
		seq++
		return fmt.Sprintf("task-%d", seq)
	}
	impl.now = func() time.Time { return time.Date(2025, 12, 24, 14, 40, 0, 0, time.UTC) }
	return impl
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	due := time.Date(2025, 12, 25, 9, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{OwnerID: "u1", Description: "call mom", DueAt: &due})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID != "task-1" || created.Status != model.TaskStatusPending {
		t.Errorf("unexpected created task %+v", created)
	}

	got, err := repo.GetTask(ctx, "u1", "task-1")
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Description != "call mom" || got.DueAt == nil || !got.DueAt.Equal(due) {
		t.Errorf("unexpected task %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, created.CreatedAt)
	}

	if _, err := repo.GetTask(ctx, "someone-else", "task-1"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("foreign owner should not see the task, err = %v", err)
	}
}

func TestListFiltersAndOrders(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, d := range []string{"first", "second", "third"} {
		if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{OwnerID: "u1", Description: d}); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}
	_, _ = repo.CreateTask(ctx, repository.CreateTaskOptions{OwnerID: "u2", Description: "other"})

	if _, err := repo.UpdateStatus(ctx, repository.UpdateStatusOptions{OwnerID: "u1", ID: "task-2", Status: model.TaskStatusCompleted}); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	tests := []struct {
		name string
		opt  repository.ListTasksOptions
		want []string
	}{
		{name: "all", opt: repository.ListTasksOptions{OwnerID: "u1"}, want: []string{"first", "second", "third"}},
		{name: "pending", opt: repository.ListTasksOptions{OwnerID: "u1", Status: model.TaskStatusPending}, want: []string{"first", "third"}},
		{name: "completed", opt: repository.ListTasksOptions{OwnerID: "u1", Status: model.TaskStatusCompleted}, want: []string{"second"}},
		{name: "limit", opt: repository.ListTasksOptions{OwnerID: "u1", Limit: 1}, want: []string{"first"}},
		{name: "unknown owner", opt: repository.ListTasksOptions{OwnerID: "nobody"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := repo.ListTasks(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListTasks: %v", err)
			}
			got := make([]string, 0, len(tasks))
			for _, task := range tasks {
				got = append(got, task.Description)
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateStatusMissing(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.UpdateStatus(context.Background(), repository.UpdateStatusOptions{OwnerID: "u1", ID: "nope", Status: model.TaskStatusCompleted})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
