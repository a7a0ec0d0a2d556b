package dialogue

import "context"

// UseCase is the per-(user, session) LIFO stack of context frames.
// Absent and undecodable stacks read as empty. Store faults are returned as-is.
type UseCase interface {
	Get(ctx context.Context, key Key) ([]Frame, error)
	Push(ctx context.Context, key Key, frame Frame) error
	// Pop removes and returns the top frame, or nil on an empty stack.
	Pop(ctx context.Context, key Key) (*Frame, error)
	// Peek returns the top frame without removing it, or nil on an empty stack.
	Peek(ctx context.Context, key Key) (*Frame, error)
	Clear(ctx context.Context, key Key) error
	// PatchTop applies fn to the top frame and persists it when fn returns true.
	// It reports whether a frame was patched.
	PatchTop(ctx context.Context, key Key, fn func(*Frame) bool) (bool, error)
}
