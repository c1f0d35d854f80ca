package repository

import (
	"context"

	"solosync/internal/model"
)

// Repository is the composed interface for the workflow data store.
type Repository interface {
	CommunicationRepository
	ClientRepository
	ProjectRepository
	InvoiceRepository
}

type CommunicationRepository interface {
	CreateCommunication(ctx context.Context, opt CreateCommunicationOptions) (model.Communication, error)
	ListCommunications(ctx context.Context, opt ListOptions) ([]model.Communication, int, error)
}

type ClientRepository interface {
	CreateClient(ctx context.Context, opt CreateClientOptions) (model.Client, error)
	// GetOneClient returns a zero Client (ID == "") when nothing matches.
	GetOneClient(ctx context.Context, opt GetOneClientOptions) (model.Client, error)
	ListClients(ctx context.Context, opt ListOptions) ([]model.Client, int, error)
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	ListProjects(ctx context.Context, opt ListOptions) ([]model.Project, int, error)
	// UpdateProjectStatus returns a zero Project when the id does not exist.
	UpdateProjectStatus(ctx context.Context, opt UpdateProjectStatusOptions) (model.Project, error)
}

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, opt CreateInvoiceOptions) (model.Invoice, error)
	ListInvoices(ctx context.Context, opt ListInvoicesOptions) ([]model.Invoice, int, error)
	// UpdateInvoiceStatus returns a zero Invoice when the id does not exist.
	UpdateInvoiceStatus(ctx context.Context, opt UpdateInvoiceStatusOptions) (model.Invoice, error)
	SumInvoiceAmounts(ctx context.Context) (map[model.InvoiceStatus]float64, error)
}
