package http

import (
	"github.com/gin-gonic/gin"

	"solosync/internal/middleware"
)

// RegisterRoutes maps workflow routes under the versioned API group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/parse-request", mw.RateLimit(), h.ParseRequest)

	rg.GET("/projects", h.ListProjects)
	rg.PATCH("/projects/:id/status", h.UpdateProjectStatus)

	rg.GET("/invoices", h.ListInvoices)
	rg.PATCH("/invoices/:id/status", h.UpdateInvoiceStatus)

	rg.GET("/communications", h.ListCommunications)
	rg.GET("/clients", h.ListClients)
	rg.GET("/stats", h.Stats)
}
