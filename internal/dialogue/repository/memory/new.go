package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"cognitive-router/internal/dialogue/repository"
	pkgLog "cognitive-router/pkg/log"
)

// Options bounds the in-memory store. Zero values mean unbounded and never
// expiring, which is what the service runs with unless configured otherwise.
type Options struct {
	Size int
	TTL  time.Duration
}

type implRepository struct {
	l      pkgLog.Logger
	mu     sync.Mutex
	stacks *expirable.LRU[string, repository.Snapshot]
}

// New creates an in-process context store.
func New(l pkgLog.Logger, opt Options) repository.Repository {
	return &implRepository{
		l:      l,
		stacks: expirable.NewLRU[string, repository.Snapshot](opt.Size, nil, opt.TTL),
	}
}
