package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listQuery, error) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, err
	}
	return q, nil
}

func (h *handler) processListInvoicesReq(c *gin.Context) (listInvoicesQuery, error) {
	var q listInvoicesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, err
	}
	return q, nil
}

// processStatusReq binds the :id path parameter and the {status} body.
func (h *handler) processStatusReq(c *gin.Context) (string, string, error) {
	var uri idUri
	if err := c.ShouldBindUri(&uri); err != nil {
		return "", "", err
	}
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", "", err
	}
	return uri.ID, req.Status, nil
}
