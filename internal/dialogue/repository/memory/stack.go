package memory

import (
	"context"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/dialogue/repository"
)

func storageKey(key dialogue.Key) string {
	return key.UserID + "\x1f" + key.SessionID
}

func (r *implRepository) GetStack(ctx context.Context, key dialogue.Key) (repository.Snapshot, error) {
	snap, ok := r.stacks.Get(storageKey(key))
	if !ok {
		return repository.Snapshot{}, nil
	}
	return repository.Snapshot{
		Payload: append([]byte(nil), snap.Payload...),
		Version: snap.Version,
	}, nil
}

func (r *implRepository) ReplaceStack(ctx context.Context, key dialogue.Key, opt repository.ReplaceStackOptions) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := storageKey(key)
	current, _ := r.stacks.Peek(k)
	if current.Version != opt.ExpectedVersion {
		r.l.Debugf(ctx, "dialogue/repository/memory.ReplaceStack: conflict on %s (have %d, expected %d)",
			key, current.Version, opt.ExpectedVersion)
		return current.Version, repository.ErrVersionConflict
	}

	next := repository.Snapshot{
		Payload: append([]byte(nil), opt.Payload...),
		Version: current.Version + 1,
	}
	r.stacks.Add(k, next)
	return next.Version, nil
}
