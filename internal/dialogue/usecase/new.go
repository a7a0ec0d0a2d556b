package usecase

import (
	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/dialogue/repository"
	pkgLog "cognitive-router/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	maxFrames int
}

// New creates the context stack use case. Stacks deeper than maxFrames drop
// their oldest frames; maxFrames <= 0 selects dialogue.DefaultMaxFrames.
func New(l pkgLog.Logger, repo repository.Repository, maxFrames int) dialogue.UseCase {
	if maxFrames <= 0 {
		maxFrames = dialogue.DefaultMaxFrames
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		maxFrames: maxFrames,
	}
}
