package http

import (
	"github.com/gin-gonic/gin"

	"solosync/internal/middleware"
)

// RegisterRoutes maps /analyze under the versioned API group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/analyze", mw.RateLimit(), h.Analyze)
}

// RegisterRawRoutes maps the unversioned /analyze endpoint that answers with the bare result.
func RegisterRawRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/analyze", mw.RateLimit(), h.AnalyzeRaw)
}
