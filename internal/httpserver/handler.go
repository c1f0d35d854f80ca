package httpserver

import (
	"context"
	"slices"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"solosync/internal/middleware"
	"solosync/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(gin.Recovery(), middleware.New(srv.l, middleware.Config{}).RequestID())
	srv.checkCORS(context.Background())

	srv.registerSystemRoutes()
	return srv.registerDomainRoutes()
}

// checkCORS warns when production accepts any origin.
func (srv *HTTPServer) checkCORS(ctx context.Context) {
	wildcard := len(srv.allowedOrigins) == 0 || slices.Contains(srv.allowedOrigins, "*")
	if srv.environment == string(model.EnvironmentProduction) && wildcard {
		srv.l.Warnf(ctx, "CORS allows any origin in production; set cors.allowed_origins")
		return
	}
	srv.l.Infof(ctx, "CORS origins (%s): %v", srv.environment, srv.allowedOrigins)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires analyzer -> workflow -> telegram and the realtime socket.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, middleware.Config{RateLimitPerMin: srv.rateLimitPerMin})
	api := srv.gin.Group("/api/v1")

	analyzerUC := srv.setupAnalyzerDomain(ctx, api, mw)
	workflowUC := srv.setupWorkflowDomain(ctx, api, mw, analyzerUC)
	srv.setupTelegram(ctx, workflowUC)

	srv.gin.GET("/ws", srv.hub.ServeWS)
	srv.l.Infof(ctx, "Realtime route registered at GET /ws")

	return nil
}
