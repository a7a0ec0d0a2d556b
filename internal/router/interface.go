package router

import "context"

// UseCase turns one raw utterance into a RoutingResult. Business outcomes
// (unknown intent, missing slots, ambiguous or empty lookups) are never errors;
// only collaborator faults are returned.
type UseCase interface {
	Route(ctx context.Context, input RouteInput) (RoutingResult, error)
}
