package task

import (
	"context"

	"cognitive-router/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	// Complete marks a pending task of the caller as completed.
	Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	Matcher
}

// Matcher resolves free text to the caller's existing task records, best
// match first. An empty result is not an error.
type Matcher interface {
	Match(ctx context.Context, sc model.Scope, input MatchInput) (MatchOutput, error)
}
