package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cognitive-router/config"
	_ "cognitive-router/docs" // Swagger docs
	"cognitive-router/internal/bootstrap"
	"cognitive-router/internal/httpserver"
	"cognitive-router/internal/middleware"
	"cognitive-router/pkg/log"
)

// @title       Cognitive Router API
// @description Deterministic intent routing for a personal assistant: classification, entity grounding, task disambiguation and dialogue state.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Cognitive Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Routing stack
	app, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build routing stack: ", err)
		os.Exit(1)
	}
	defer app.Close()

	// 4. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		RateLimit: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxClients:     cfg.RateLimit.MaxClients,
			ClientTTL:      cfg.RateLimit.ClientTTL,
		},
		RouterUC:    app.Router,
		TaskUC:      app.Tasks,
		DialogueUC:  app.Dialogue,
		ReadyChecks: []func() error{app.Ping},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
