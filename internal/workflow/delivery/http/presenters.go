package http

import (
	"solosync/internal/model"
	"solosync/internal/workflow"
)

// --- Request DTOs ---

type parseReq struct {
	RawText  string `json:"rawText" binding:"required"`
	Platform string `json:"platform"`
}

func (r parseReq) toInput() workflow.SyncInput {
	return workflow.SyncInput{RawText: r.RawText, Platform: r.Platform}
}

type listQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

func (q listQuery) toInput() workflow.ListInput {
	return workflow.ListInput{Limit: q.Limit, Offset: q.Offset}
}

type listInvoicesQuery struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
	Status string `form:"status"`
}

func (q listInvoicesQuery) toInput() workflow.ListInvoicesInput {
	return workflow.ListInvoicesInput{
		ListInput: workflow.ListInput{Limit: q.Limit, Offset: q.Offset},
		Status:    model.InvoiceStatus(q.Status),
	}
}

type idUri struct {
	ID string `uri:"id" binding:"required"`
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

// --- Response DTOs ---

type parseResp struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Project model.Project `json:"project"`
	Invoice model.Invoice `json:"invoice"`
	Client  model.Client  `json:"client"`
}

func (h *handler) newParseResp(out workflow.SyncOutput) parseResp {
	return parseResp{
		Success: true,
		Message: workflow.SyncMessage,
		Project: out.Project,
		Invoice: out.Invoice,
		Client:  out.Client,
	}
}

type meta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func newMeta(total int, in workflow.ListInput) meta {
	limit := in.Limit
	if limit <= 0 {
		limit = workflow.DefaultListLimit
	}
	return meta{Total: total, Limit: limit, Offset: in.Offset}
}

type projectsResp struct {
	Projects []model.Project `json:"projects"`
	Meta     meta            `json:"meta"`
}

type invoicesResp struct {
	Invoices []model.Invoice `json:"invoices"`
	Meta     meta            `json:"meta"`
}

type communicationsResp struct {
	Communications []model.Communication `json:"communications"`
	Meta           meta                  `json:"meta"`
}

type clientsResp struct {
	Clients []model.Client `json:"clients"`
	Meta    meta           `json:"meta"`
}

type statsResp struct {
	TotalRevenue float64 `json:"totalRevenue"`
	Pending      float64 `json:"pending"`
	Projects     int     `json:"projects"`
	Clients      int     `json:"clients"`
}

func (h *handler) newStatsResp(out workflow.StatsOutput) statsResp {
	return statsResp{
		TotalRevenue: out.TotalRevenue,
		Pending:      out.Pending,
		Projects:     out.Projects,
		Clients:      out.Clients,
	}
}
