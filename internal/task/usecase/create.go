package usecase

import (
	"context"
	"fmt"
	"strings"

	"cognitive-router/internal/model"
	"cognitive-router/internal/task"
	"cognitive-router/internal/task/repository"
)

// Create stores a new pending task for the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	if sc.UserID == "" {
		return model.Task{}, task.ErrEmptyOwner
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return model.Task{}, task.ErrEmptyDescription
	}

	t, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		OwnerID:     sc.UserID,
		Description: description,
		DueAt:       input.DueAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.Create: %v", err)
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "internal.task.usecase.Create: user=%s task=%s", sc.UserID, t.ID)
	return t, nil
}
