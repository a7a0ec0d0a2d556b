package usecase

import (
	"context"
	"errors"
	"fmt"

	"cognitive-router/internal/model"
	"cognitive-router/internal/task"
	"cognitive-router/internal/task/repository"
)

// List returns the caller's tasks, oldest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if sc.UserID == "" {
		return task.ListOutput{}, task.ErrEmptyOwner
	}
	if input.Status != "" && !input.Status.Valid() {
		return task.ListOutput{}, task.ErrInvalidStatus
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID: sc.UserID,
		Status:  input.Status,
		Limit:   input.Limit,
	})
	if err != nil {
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}

// Complete marks one of the caller's pending tasks as completed.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	if sc.UserID == "" {
		return model.Task{}, task.ErrEmptyOwner
	}

	current, err := uc.repo.GetTask(ctx, sc.UserID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	if current.Status == model.TaskStatusCompleted {
		return model.Task{}, task.ErrAlreadyCompleted
	}

	updated, err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		OwnerID: sc.UserID,
		ID:      id,
		Status:  model.TaskStatusCompleted,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to complete task: %w", err)
	}

	uc.l.Infof(ctx, "internal.task.usecase.Complete: user=%s task=%s", sc.UserID, id)
	return updated, nil
}
