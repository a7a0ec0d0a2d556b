package repository

import (
	"context"

	"cognitive-router/internal/model"
)

// Repository is the persistence interface for task records.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetTask returns ErrNotFound when the owner has no task with that id.
	GetTask(ctx context.Context, ownerID, id string) (model.Task, error)
	// ListTasks returns tasks oldest first.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateStatus(ctx context.Context, opt UpdateStatusOptions) (model.Task, error)
}
