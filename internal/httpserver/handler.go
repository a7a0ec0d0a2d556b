package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	dialogueHTTP "cognitive-router/internal/dialogue/delivery/http"
	"cognitive-router/internal/model"
	routerHTTP "cognitive-router/internal/router/delivery/http"
	taskHTTP "cognitive-router/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers every domain under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	routerHTTP.RegisterRoutes(api, routerHTTP.New(srv.l, srv.routerUC), srv.mw)
	srv.l.Infof(ctx, "Router routes registered at POST /api/v1/router/route")

	if srv.taskUC != nil {
		taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC), srv.mw)
		srv.l.Infof(ctx, "Task routes registered at /api/v1/tasks")
	} else {
		srv.l.Infof(ctx, "Task use case not configured, skipping task routes")
	}

	if srv.dialogueUC != nil {
		dialogueHTTP.RegisterRoutes(api, dialogueHTTP.New(srv.l, srv.dialogueUC), srv.mw)
		srv.l.Infof(ctx, "Dialogue routes registered at /api/v1/dialogue/sessions")
	} else {
		srv.l.Infof(ctx, "Dialogue use case not configured, skipping context stack routes")
	}
}
