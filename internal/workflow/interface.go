package workflow

import (
	"context"

	"solosync/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Sync stores the message, analyzes it and opens the client, project and invoice records.
	Sync(ctx context.Context, input SyncInput) (SyncOutput, error)

	ListProjects(ctx context.Context, input ListInput) (ListProjectsOutput, error)
	ListInvoices(ctx context.Context, input ListInvoicesInput) (ListInvoicesOutput, error)
	ListCommunications(ctx context.Context, input ListInput) (ListCommunicationsOutput, error)
	ListClients(ctx context.Context, input ListInput) (ListClientsOutput, error)

	UpdateProjectStatus(ctx context.Context, input UpdateProjectStatusInput) (model.Project, error)
	UpdateInvoiceStatus(ctx context.Context, input UpdateInvoiceStatusInput) (model.Invoice, error)

	Stats(ctx context.Context) (StatsOutput, error)
}

// Notifier pushes workflow events to connected dashboards.
type Notifier interface {
	Publish(ctx context.Context, event string, payload any) error
}
