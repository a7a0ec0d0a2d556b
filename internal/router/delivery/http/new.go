package http

import (
	"cognitive-router/internal/router"
	"cognitive-router/pkg/log"
)

type handler struct {
	l  log.Logger
	uc router.UseCase
}

// New creates a new HTTP handler for the router.
func New(l log.Logger, uc router.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
