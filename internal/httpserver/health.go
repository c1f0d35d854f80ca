package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "solosync/pkg/errors"
	"solosync/pkg/response"
)

const (
	HealthMessage = "SoloSync API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "solosync"

	readyPingTimeout = 2 * time.Second
)

type statusResp struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Version     string `json:"version"`
	Service     string `json:"service"`
	Store       string `json:"store"`
	Subscribers int    `json:"subscribers"`
}

func (srv *HTTPServer) status(state string) statusResp {
	store := "memory"
	if srv.postgresDB != nil {
		store = "postgres"
	}
	return statusResp{
		Status:      state,
		Message:     HealthMessage,
		Version:     HealthVersion,
		Service:     ServiceName,
		Store:       store,
		Subscribers: srv.hub.Count(),
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=statusResp} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports ready once the database, when configured, answers a ping.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=statusResp} "API is ready"
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.postgresDB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyPingTimeout)
		defer cancel()
		if err := srv.postgresDB.PingContext(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: postgres ping: %v", err)
			response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "database unavailable"), nil)
			return
		}
	}

	response.OK(c, srv.status("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=statusResp} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
