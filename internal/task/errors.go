package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyOwner       = errors.New("owner is required")
	ErrEmptyDescription = errors.New("task description is empty")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrTaskNotFound     = errors.New("task not found")
	ErrAlreadyCompleted = errors.New("task is already completed")
)
