package usecase

import (
	"context"

	"solosync/internal/model"
	"solosync/internal/workflow"
	repo "solosync/internal/workflow/repository"
)

// Stats reports revenue from paid invoices, the amount still outstanding
// and how many projects and clients exist.
func (uc *implUseCase) Stats(ctx context.Context) (workflow.StatsOutput, error) {
	sums, err := uc.repo.SumInvoiceAmounts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.Stats.SumInvoiceAmounts: %v", err)
		return workflow.StatsOutput{}, err
	}

	_, projects, err := uc.repo.ListProjects(ctx, repo.ListOptions{Limit: 1})
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.Stats.ListProjects: %v", err)
		return workflow.StatsOutput{}, err
	}

	_, clients, err := uc.repo.ListClients(ctx, repo.ListOptions{Limit: 1})
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.Stats.ListClients: %v", err)
		return workflow.StatsOutput{}, err
	}

	return workflow.StatsOutput{
		TotalRevenue: sums[model.InvoiceStatusPaid],
		Pending:      sums[model.InvoiceStatusDraft] + sums[model.InvoiceStatusSent],
		Projects:     projects,
		Clients:      clients,
	}, nil
}
