package repository

import (
	"time"

	"cognitive-router/internal/model"
)

// CreateTaskOptions holds the parameters for creating a task record.
type CreateTaskOptions struct {
	OwnerID     string
	Description string
	DueAt       *time.Time
}

// ListTasksOptions holds the parameters for listing task records.
type ListTasksOptions struct {
	OwnerID string
	Status  model.TaskStatus // empty means any status
	Limit   int              // 0 means no limit
}

// UpdateStatusOptions holds the parameters for a status transition.
type UpdateStatusOptions struct {
	OwnerID string
	ID      string
	Status  model.TaskStatus
}
