package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"solosync/internal/analyzer"
	analyzerHTTP "solosync/internal/analyzer/delivery/http"
	analyzerUsecase "solosync/internal/analyzer/usecase"
	"solosync/internal/middleware"
	"solosync/internal/workflow"
	workflowHTTP "solosync/internal/workflow/delivery/http"
	workflowTelegram "solosync/internal/workflow/delivery/telegram"
	workflowUsecase "solosync/internal/workflow/usecase"
)

// setupAnalyzerDomain registers POST /analyze and POST /api/v1/analyze.
func (srv *HTTPServer) setupAnalyzerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) analyzer.UseCase {
	// 1. UseCase
	uc := analyzerUsecase.New(srv.l, srv.dateMath)

	// 2. HTTP Handler
	h := analyzerHTTP.New(srv.l, uc)

	// 3. Routes
	analyzerHTTP.RegisterRawRoutes(srv.gin, h, mw)
	analyzerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Analyzer domain registered (timezone=%s)", srv.dateMath.Location())
	return uc
}

// setupWorkflowDomain registers the sync, list, status and stats routes.
func (srv *HTTPServer) setupWorkflowDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, analyzerUC analyzer.UseCase) workflow.UseCase {
	// 1. UseCase
	uc := workflowUsecase.New(srv.l, srv.workflowRepo, analyzerUC, srv.calendar, srv.calendarConfig, srv.hub)

	// 2. HTTP Handler
	h := workflowHTTP.New(srv.l, uc)

	// 3. Routes: /api/v1/parse-request, /projects, /invoices, /communications, /clients, /stats
	workflowHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Workflow domain registered (calendar=%t)", srv.calendar != nil)
	return uc
}

func (srv *HTTPServer) setupTelegram(ctx context.Context, uc workflow.UseCase) {
	if srv.telegramBot == nil {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
		return
	}

	h := workflowTelegram.New(srv.l, uc, srv.telegramBot, srv.telegramSecret)
	workflowTelegram.RegisterRoutes(srv.gin, h)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
}
