package http

import (
	"github.com/gin-gonic/gin"

	"solosync/internal/workflow"
	pkgLog "solosync/pkg/log"
)

// Handler is the public interface for the workflow HTTP delivery layer.
type Handler interface {
	ParseRequest(c *gin.Context)
	ListProjects(c *gin.Context)
	ListInvoices(c *gin.Context)
	ListCommunications(c *gin.Context)
	ListClients(c *gin.Context)
	UpdateProjectStatus(c *gin.Context)
	UpdateInvoiceStatus(c *gin.Context)
	Stats(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc workflow.UseCase
}

// New creates a new HTTP handler for the workflow domain.
func New(l pkgLog.Logger, uc workflow.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
