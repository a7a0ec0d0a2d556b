package usecase

import (
	"context"
	"errors"
	"fmt"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/dialogue/repository"
)

const logPrefix = "internal.dialogue.usecase"

func (uc *implUseCase) Get(ctx context.Context, key dialogue.Key) ([]dialogue.Frame, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	snap, err := uc.repo.GetStack(ctx, key)
	if err != nil {
		return nil, err
	}
	return uc.decode(ctx, key, snap.Payload), nil
}

func (uc *implUseCase) Push(ctx context.Context, key dialogue.Key, frame dialogue.Frame) error {
	return uc.mutate(ctx, key, func(frames []dialogue.Frame) []dialogue.Frame {
		return append(frames, frame)
	})
}

func (uc *implUseCase) Pop(ctx context.Context, key dialogue.Key) (*dialogue.Frame, error) {
	var top *dialogue.Frame
	err := uc.mutate(ctx, key, func(frames []dialogue.Frame) []dialogue.Frame {
		top = nil
		if len(frames) == 0 {
			return nil
		}
		f := frames[len(frames)-1]
		top = &f
		return frames[:len(frames)-1]
	})
	if err != nil {
		return nil, err
	}
	return top, nil
}

func (uc *implUseCase) Peek(ctx context.Context, key dialogue.Key) (*dialogue.Frame, error) {
	frames, err := uc.Get(ctx, key)
	if err != nil || len(frames) == 0 {
		return nil, err
	}
	top := frames[len(frames)-1]
	return &top, nil
}

func (uc *implUseCase) Clear(ctx context.Context, key dialogue.Key) error {
	return uc.mutate(ctx, key, func([]dialogue.Frame) []dialogue.Frame {
		return []dialogue.Frame{}
	})
}

func (uc *implUseCase) PatchTop(ctx context.Context, key dialogue.Key, fn func(*dialogue.Frame) bool) (bool, error) {
	var patched bool
	err := uc.mutate(ctx, key, func(frames []dialogue.Frame) []dialogue.Frame {
		patched = false
		if len(frames) == 0 {
			return nil
		}
		top := frames[len(frames)-1]
		top.Entities = cloneEntities(top.Entities)
		if !fn(&top) {
			return nil
		}
		patched = true
		frames[len(frames)-1] = top
		return frames
	})
	if err != nil {
		return false, err
	}
	return patched, nil
}

// mutate runs one optimistic read-modify-write. fn returns the new stack, or
// nil to leave the stored stack untouched. The whole cycle is retried when
// another writer got in between.
func (uc *implUseCase) mutate(ctx context.Context, key dialogue.Key, fn func([]dialogue.Frame) []dialogue.Frame) error {
	if err := validateKey(key); err != nil {
		return err
	}

	for attempt := 1; attempt <= dialogue.MaxWriteAttempts; attempt++ {
		snap, err := uc.repo.GetStack(ctx, key)
		if err != nil {
			return err
		}

		next := fn(uc.decode(ctx, key, snap.Payload))
		if next == nil || (len(next) == 0 && snap.Version == 0) {
			return nil
		}
		if len(next) > uc.maxFrames {
			uc.l.Warnf(ctx, "%s.mutate: stack %s exceeds %d frames, dropping %d oldest",
				logPrefix, key, uc.maxFrames, len(next)-uc.maxFrames)
			next = next[len(next)-uc.maxFrames:]
		}

		payload, err := dialogue.Encode(next)
		if err != nil {
			return fmt.Errorf("%s.mutate: %w", logPrefix, err)
		}

		_, err = uc.repo.ReplaceStack(ctx, key, repository.ReplaceStackOptions{
			Payload:         payload,
			ExpectedVersion: snap.Version,
		})
		if errors.Is(err, repository.ErrVersionConflict) {
			uc.l.Debugf(ctx, "%s.mutate: version conflict on %s, attempt %d", logPrefix, key, attempt)
			continue
		}
		return err
	}

	uc.l.Errorf(ctx, "%s.mutate: giving up on %s after %d attempts", logPrefix, key, dialogue.MaxWriteAttempts)
	return dialogue.ErrTooManyConflicts
}

// decode never fails: a payload that cannot be read is logged and treated as empty.
func (uc *implUseCase) decode(ctx context.Context, key dialogue.Key, payload []byte) []dialogue.Frame {
	frames, err := dialogue.Decode(payload)
	if err != nil {
		uc.l.Warnf(ctx, "%s.decode: resetting stack %s: %v", logPrefix, key, err)
		return []dialogue.Frame{}
	}
	return frames
}

func validateKey(key dialogue.Key) error {
	if key.UserID == "" {
		return dialogue.ErrInvalidKey
	}
	return nil
}

func cloneEntities(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
