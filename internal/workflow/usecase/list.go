package usecase

import (
	"context"

	"solosync/internal/workflow"
	repo "solosync/internal/workflow/repository"
)

func listOptions(input workflow.ListInput) repo.ListOptions {
	limit := input.Limit
	if limit <= 0 {
		limit = workflow.DefaultListLimit
	}
	if limit > workflow.MaxListLimit {
		limit = workflow.MaxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}
	return repo.ListOptions{Limit: limit, Offset: offset}
}

func (uc *implUseCase) ListProjects(ctx context.Context, input workflow.ListInput) (workflow.ListProjectsOutput, error) {
	projects, total, err := uc.repo.ListProjects(ctx, listOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.ListProjects: %v", err)
		return workflow.ListProjectsOutput{}, err
	}
	return workflow.ListProjectsOutput{Projects: projects, Total: total}, nil
}

func (uc *implUseCase) ListInvoices(ctx context.Context, input workflow.ListInvoicesInput) (workflow.ListInvoicesOutput, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return workflow.ListInvoicesOutput{}, workflow.ErrInvalidStatus
	}

	invoices, total, err := uc.repo.ListInvoices(ctx, repo.ListInvoicesOptions{
		ListOptions: listOptions(input.ListInput),
		Status:      input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.ListInvoices: %v", err)
		return workflow.ListInvoicesOutput{}, err
	}
	return workflow.ListInvoicesOutput{Invoices: invoices, Total: total}, nil
}

func (uc *implUseCase) ListCommunications(ctx context.Context, input workflow.ListInput) (workflow.ListCommunicationsOutput, error) {
	comms, total, err := uc.repo.ListCommunications(ctx, listOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.ListCommunications: %v", err)
		return workflow.ListCommunicationsOutput{}, err
	}
	return workflow.ListCommunicationsOutput{Communications: comms, Total: total}, nil
}

func (uc *implUseCase) ListClients(ctx context.Context, input workflow.ListInput) (workflow.ListClientsOutput, error) {
	clients, total, err := uc.repo.ListClients(ctx, listOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.ListClients: %v", err)
		return workflow.ListClientsOutput{}, err
	}
	return workflow.ListClientsOutput{Clients: clients, Total: total}, nil
}
