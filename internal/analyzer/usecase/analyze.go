package usecase

import (
	"context"

	"solosync/internal/analyzer"
)

// Analyze runs the four extractors over input.Text. The clock is read once.
func (uc *implUseCase) Analyze(ctx context.Context, input analyzer.AnalyzeInput) (analyzer.AnalyzeOutput, error) {
	uc.l.Debugf(ctx, "analyzer.usecase.Analyze: text=%q", input.Text)

	now := uc.dateMath.Now()
	result := analyzer.Result{
		Client:   extractClient(input.Text),
		Task:     classifyTask(input.Text),
		Budget:   extractBudget(input.Text),
		Deadline: uc.resolveDeadline(ctx, input.Text, now),
	}

	uc.l.Infof(ctx, "analyzer.usecase.Analyze: client=%q task=%q budget=%.2f deadline=%s",
		result.Client, result.Task, result.Budget, result.Deadline.Format("2006-01-02T15:04:05"))

	return analyzer.AnalyzeOutput{Result: result}, nil
}
