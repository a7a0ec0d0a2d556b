package usecase

import (
	"cognitive-router/internal/preprocess"
	pkgLog "cognitive-router/pkg/log"
)

// DefaultMaxInputRunes bounds a single utterance.
const DefaultMaxInputRunes = 4096

type implUseCase struct {
	l        pkgLog.Logger
	maxRunes int
}

// New creates the default preprocessor. maxRunes <= 0 selects DefaultMaxInputRunes.
func New(l pkgLog.Logger, maxRunes int) preprocess.Preprocessor {
	if maxRunes <= 0 {
		maxRunes = DefaultMaxInputRunes
	}
	return &implUseCase{
		l:        l,
		maxRunes: maxRunes,
	}
}
