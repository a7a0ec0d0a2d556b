package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/middleware"
	"cognitive-router/internal/router"
	"cognitive-router/internal/task"
	"cognitive-router/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware
	mw middleware.Middleware

	// Domains
	routerUC   router.UseCase
	taskUC     task.UseCase
	dialogueUC dialogue.UseCase

	// readiness probes, run in order
	checks []func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	RateLimit       middleware.Config

	RouterUC   router.UseCase
	TaskUC     task.UseCase
	DialogueUC dialogue.UseCase

	// ReadyChecks gate /ready, e.g. a database ping.
	ReadyChecks []func() error
}

// New creates a new HTTPServer instance with every route mapped.
func New(cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		routerUC:        cfg.RouterUC,
		taskUC:          cfg.TaskUC,
		dialogueUC:      cfg.DialogueUC,
		checks:          cfg.ReadyChecks,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}
	srv.mw = middleware.New(srv.l, cfg.RateLimit)

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.routerUC == nil {
		return errors.New("router use case is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
