package http

import (
	"cognitive-router/internal/dialogue"
	"cognitive-router/pkg/log"
)

type handler struct {
	l  log.Logger
	uc dialogue.UseCase
}

// New creates a new HTTP handler for context stack inspection.
func New(l log.Logger, uc dialogue.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
