package http

import (
	"github.com/gin-gonic/gin"

	"solosync/internal/model"
	"solosync/internal/workflow"
	"solosync/pkg/response"
)

// ParseRequest godoc
// @Summary     Sync a client message
// @Description Stores the message, analyzes it, finds or creates the client, opens a project and drafts an invoice.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       body body     parseReq true "Raw message"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/parse-request [POST]
func (h *handler) ParseRequest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		h.l.Warnf(ctx, "workflow.http.ParseRequest: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Sync(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "workflow.http.ParseRequest: uc.Sync: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// ListProjects godoc
// @Summary     List projects
// @Tags        Workflow
// @Produce     json
// @Param       limit  query    int false "Page size (1-100, default 20)"
// @Param       offset query    int false "Offset"
// @Success     200    {object} projectsResp
// @Failure     400    {object} response.Resp "Bad Request"
// @Router      /api/v1/projects [GET]
func (h *handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	q, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	in := q.toInput()
	output, err := h.uc.ListProjects(ctx, in)
	if err != nil {
		h.l.Errorf(ctx, "workflow.http.ListProjects: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, projectsResp{Projects: output.Projects, Meta: newMeta(output.Total, in)})
}

// ListInvoices godoc
// @Summary     List invoices
// @Tags        Workflow
// @Produce     json
// @Param       status query    string false "Draft, Sent or Paid"
// @Param       limit  query    int    false "Page size (1-100, default 20)"
// @Param       offset query    int    false "Offset"
// @Success     200    {object} invoicesResp
// @Failure     400    {object} response.Resp "Bad Request"
// @Router      /api/v1/invoices [GET]
func (h *handler) ListInvoices(c *gin.Context) {
	ctx := c.Request.Context()

	q, err := h.processListInvoicesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	in := q.toInput()
	output, err := h.uc.ListInvoices(ctx, in)
	if err != nil {
		h.l.Errorf(ctx, "workflow.http.ListInvoices: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, invoicesResp{Invoices: output.Invoices, Meta: newMeta(output.Total, in.ListInput)})
}

// ListCommunications godoc
// @Summary     List stored messages
// @Tags        Workflow
// @Produce     json
// @Param       limit  query    int false "Page size (1-100, default 20)"
// @Param       offset query    int false "Offset"
// @Success     200    {object} communicationsResp
// @Failure     400    {object} response.Resp "Bad Request"
// @Router      /api/v1/communications [GET]
func (h *handler) ListCommunications(c *gin.Context) {
	ctx := c.Request.Context()

	q, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	in := q.toInput()
	output, err := h.uc.ListCommunications(ctx, in)
	if err != nil {
		h.l.Errorf(ctx, "workflow.http.ListCommunications: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, communicationsResp{Communications: output.Communications, Meta: newMeta(output.Total, in)})
}

// ListClients godoc
// @Summary     List clients
// @Tags        Workflow
// @Produce     json
// @Param       limit  query    int false "Page size (1-100, default 20)"
// @Param       offset query    int false "Offset"
// @Success     200    {object} clientsResp
// @Failure     400    {object} response.Resp "Bad Request"
// @Router      /api/v1/clients [GET]
func (h *handler) ListClients(c *gin.Context) {
	ctx := c.Request.Context()

	q, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	in := q.toInput()
	output, err := h.uc.ListClients(ctx, in)
	if err != nil {
		h.l.Errorf(ctx, "workflow.http.ListClients: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, clientsResp{Clients: output.Clients, Meta: newMeta(output.Total, in)})
}

// UpdateProjectStatus godoc
// @Summary     Move a project to another column
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       id   path     string    true "Project ID"
// @Param       body body     statusReq true "To Do, In Progress, Invoiced or Paid"
// @Success     200  {object} model.Project
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id}/status [PATCH]
func (h *handler) UpdateProjectStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id, status, err := h.processStatusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	project, err := h.uc.UpdateProjectStatus(ctx, workflow.UpdateProjectStatusInput{
		ID:     id,
		Status: model.ProjectStatus(status),
	})
	if err != nil {
		h.l.Warnf(ctx, "workflow.http.UpdateProjectStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, project)
}

// UpdateInvoiceStatus godoc
// @Summary     Change an invoice status
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       id   path     string    true "Invoice ID"
// @Param       body body     statusReq true "Draft, Sent or Paid"
// @Success     200  {object} model.Invoice
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/invoices/{id}/status [PATCH]
func (h *handler) UpdateInvoiceStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id, status, err := h.processStatusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	invoice, err := h.uc.UpdateInvoiceStatus(ctx, workflow.UpdateInvoiceStatusInput{
		ID:     id,
		Status: model.InvoiceStatus(status),
	})
	if err != nil {
		h.l.Warnf(ctx, "workflow.http.UpdateInvoiceStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, invoice)
}

// Stats godoc
// @Summary     Dashboard totals
// @Description Revenue from paid invoices, outstanding draft and sent amounts, project and client counts.
// @Tags        Workflow
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "workflow.http.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatsResp(output))
}
