package model

import "time"

// TaskStatus is the lifecycle state of a task record.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// Task is a user-owned task record the router can disambiguate against.
type Task struct {
	ID          string
	OwnerID     string
	Description string
	Status      TaskStatus
	DueAt       *time.Time // nil when the task has no deadline
	CreatedAt   time.Time
}
