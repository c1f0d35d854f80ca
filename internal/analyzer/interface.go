package analyzer

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze extracts client, task, budget and deadline from free-form text.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}
