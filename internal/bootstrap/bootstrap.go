// Package bootstrap assembles the routing stack from configuration so every
// binary wires the same components.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"cognitive-router/config"
	"cognitive-router/internal/dialogue"
	dialogueRepo "cognitive-router/internal/dialogue/repository"
	dialogueMemory "cognitive-router/internal/dialogue/repository/memory"
	dialogueSqlite "cognitive-router/internal/dialogue/repository/sqlite"
	dialogueUC "cognitive-router/internal/dialogue/usecase"
	preprocessUC "cognitive-router/internal/preprocess/usecase"
	"cognitive-router/internal/router"
	routerUC "cognitive-router/internal/router/usecase"
	"cognitive-router/internal/task"
	taskSqlite "cognitive-router/internal/task/repository/sqlite"
	taskUC "cognitive-router/internal/task/usecase"
	"cognitive-router/internal/temporal"
	"cognitive-router/pkg/log"
	pkgSqlite "cognitive-router/pkg/sqlite"
)

// App is the assembled service.
type App struct {
	Router   router.UseCase
	Tasks    task.UseCase
	Dialogue dialogue.UseCase

	db *sql.DB
}

// Build opens storage and constructs every use case.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	db, err := pkgSqlite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	app, err := build(ctx, cfg, l, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return app, nil
}

func build(ctx context.Context, cfg *config.Config, l log.Logger, db *sql.DB) (*App, error) {
	taskRepo, err := taskSqlite.New(ctx, db, l)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: task store: %w", err)
	}
	tasks := taskUC.New(l, taskRepo)

	var stackRepo dialogueRepo.Repository
	switch cfg.Dialogue.Store {
	case config.StoreSQLite:
		if stackRepo, err = dialogueSqlite.New(ctx, db, l); err != nil {
			return nil, fmt.Errorf("bootstrap: context store: %w", err)
		}
	default:
		stackRepo = dialogueMemory.New(l, dialogueMemory.Options{
			Size: cfg.Dialogue.CacheSize,
			TTL:  cfg.Dialogue.TTL,
		})
	}
	stack := dialogueUC.New(l, stackRepo, cfg.Dialogue.MaxFrames)

	resolver, err := temporal.New(cfg.Router.DefaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	r := routerUC.New(l, preprocessUC.New(l, cfg.Preprocess.MaxInputRunes), tasks, stack, resolver, routerUC.Options{
		MatchLimit:      cfg.Router.MatchLimit,
		ConfidenceScore: cfg.Router.ConfidenceScore,
	})

	l.Infof(ctx, "Routing stack ready (store=%s, timezone=%s, sqlite=%s)",
		cfg.Dialogue.Store, cfg.Router.DefaultTimezone, cfg.SQLite.Path)

	return &App{Router: r, Tasks: tasks, Dialogue: stack, db: db}, nil
}

// Ping reports whether the database still answers.
func (a *App) Ping() error {
	return a.db.Ping()
}

// Close releases storage.
func (a *App) Close() error {
	return a.db.Close()
}
