package http

import (
	"solosync/internal/analyzer"
	"solosync/pkg/response"
)

// --- Request DTOs ---

// analyzeReq uses a pointer so that "" passes validation while a missing field does not.
type analyzeReq struct {
	Text *string `json:"text" binding:"required"`
}

func (r analyzeReq) validate() error {
	if r.Text == nil {
		return analyzer.ErrTextRequired
	}
	return nil
}

func (r analyzeReq) toInput() analyzer.AnalyzeInput {
	return analyzer.AnalyzeInput{Text: *r.Text}
}

// --- Response DTOs ---

type analyzeResp struct {
	Client   string                 `json:"client"`
	Task     string                 `json:"task"`
	Budget   float64                `json:"budget"`
	Deadline response.NaiveDateTime `json:"deadline" swaggertype:"string" example:"2024-05-03T15:30:45.123456"`
}

func (h *handler) newAnalyzeResp(out analyzer.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Client:   out.Result.Client,
		Task:     out.Result.Task,
		Budget:   out.Result.Budget,
		Deadline: response.NaiveDateTime(out.Result.Deadline),
	}
}
