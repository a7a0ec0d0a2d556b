package repository

import (
	"context"

	"cognitive-router/internal/dialogue"
)

// Repository is the keyed store behind the context stack. It stores the whole
// stack as one opaque payload and guards writes with a version number.
type Repository interface {
	// GetStack returns the current payload and version. A missing key is a zero
	// Snapshot (nil payload, version 0), not an error.
	GetStack(ctx context.Context, key dialogue.Key) (Snapshot, error)
	// ReplaceStack writes the whole payload if the stored version still equals
	// opt.ExpectedVersion and returns the new version. Otherwise it returns ErrVersionConflict.
	ReplaceStack(ctx context.Context, key dialogue.Key, opt ReplaceStackOptions) (int64, error)
}
