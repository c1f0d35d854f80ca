package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solosync/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a client message
// @Description Extracts client, task, budget and deadline from free-form text using keyword heuristics.
// @Tags        Analyzer
// @Accept      json
// @Produce     json
// @Param       body body     analyzeReq true "Message"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		h.l.Warnf(ctx, "analyzer.http.Analyze: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analyzer.http.Analyze: uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// AnalyzeRaw godoc
// @Summary     Analyze a client message (bare response)
// @Description Same as /api/v1/analyze but answers with the bare result object.
// @Tags        Analyzer
// @Accept      json
// @Produce     json
// @Param       body body     analyzeReq true "Message"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /analyze [POST]
func (h *handler) AnalyzeRaw(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		h.l.Warnf(ctx, "analyzer.http.AnalyzeRaw: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analyzer.http.AnalyzeRaw: uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newAnalyzeResp(output))
}
