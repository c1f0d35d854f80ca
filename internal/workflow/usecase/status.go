package usecase

import (
	"context"

	"solosync/internal/model"
	"solosync/internal/workflow"
	repo "solosync/internal/workflow/repository"
)

func (uc *implUseCase) UpdateProjectStatus(ctx context.Context, input workflow.UpdateProjectStatusInput) (model.Project, error) {
	if !input.Status.IsValid() {
		return model.Project{}, workflow.ErrInvalidStatus
	}

	project, err := uc.repo.UpdateProjectStatus(ctx, repo.UpdateProjectStatusOptions{
		ID:     input.ID,
		Status: input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.UpdateProjectStatus: %v", err)
		return model.Project{}, err
	}
	if project.ID == "" {
		return model.Project{}, workflow.ErrProjectNotFound
	}
	return project, nil
}

func (uc *implUseCase) UpdateInvoiceStatus(ctx context.Context, input workflow.UpdateInvoiceStatusInput) (model.Invoice, error) {
	if !input.Status.IsValid() {
		return model.Invoice{}, workflow.ErrInvalidStatus
	}

	invoice, err := uc.repo.UpdateInvoiceStatus(ctx, repo.UpdateInvoiceStatusOptions{
		ID:     input.ID,
		Status: input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.UpdateInvoiceStatus: %v", err)
		return model.Invoice{}, err
	}
	if invoice.ID == "" {
		return model.Invoice{}, workflow.ErrInvoiceNotFound
	}
	return invoice, nil
}
