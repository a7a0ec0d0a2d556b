package usecase

import (
	"sync"

	"cognitive-router/internal/dialogue"
)

// keyLocks serializes turns per conversation. Entries are reference counted
// and removed once no turn holds or waits for them.
type keyLocks struct {
	mu    sync.Mutex
	locks map[dialogue.Key]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[dialogue.Key]*keyLock)}
}

// lock blocks until key is free and returns the matching unlock.
func (k *keyLocks) lock(key dialogue.Key) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyLocks) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
