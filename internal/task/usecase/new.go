package usecase

import (
	"cognitive-router/internal/task"
	"cognitive-router/internal/task/repository"
	pkgLog "cognitive-router/pkg/log"
)

// DefaultMatchLimit caps Match results when the caller gives no limit.
const DefaultMatchLimit = 5

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
