package usecase

import (
	"time"

	"github.com/google/uuid"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/preprocess"
	"cognitive-router/internal/router"
	"cognitive-router/internal/task"
	"cognitive-router/internal/temporal"
	pkgLog "cognitive-router/pkg/log"
)

// Options tunes the router. Zero values select the package defaults.
type Options struct {
	MatchLimit      int
	ConfidenceScore float64
}

type implUseCase struct {
	l        pkgLog.Logger
	pre      preprocess.Preprocessor
	matcher  task.Matcher
	stack    dialogue.UseCase
	resolver *temporal.Resolver
	locks    *keyLocks
	opt      Options

	now   func() time.Time
	newID func() string
}

var _ router.UseCase = (*implUseCase)(nil)

// New creates the router use case.
func New(
	l pkgLog.Logger,
	pre preprocess.Preprocessor,
	matcher task.Matcher,
	stack dialogue.UseCase,
	resolver *temporal.Resolver,
	opt Options,
) *implUseCase {
	if opt.MatchLimit <= 0 {
		opt.MatchLimit = router.DefaultMatchLimit
	}
	if opt.ConfidenceScore <= 0 {
		opt.ConfidenceScore = router.DefaultConfidenceScore
	}
	return &implUseCase{
		l:        l,
		pre:      pre,
		matcher:  matcher,
		stack:    stack,
		resolver: resolver,
		locks:    newKeyLocks(),
		opt:      opt,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}
