package http

import (
	"github.com/gin-gonic/gin"

	"solosync/internal/analyzer"
	pkgLog "solosync/pkg/log"
)

// Handler is the public interface for the analyzer HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	AnalyzeRaw(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc analyzer.UseCase
}

// New creates a new HTTP handler for the analyzer domain.
func New(l pkgLog.Logger, uc analyzer.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
