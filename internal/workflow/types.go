package workflow

import "solosync/internal/model"

// EventSyncComplete is published after a message has been turned into a project and invoice.
const EventSyncComplete = "sync-complete"

// SyncMessage is the reply returned after a successful sync.
const SyncMessage = "Workflow Synced Successfully"

// SyncInput is a raw client message to push through the workflow.
type SyncInput struct {
	RawText  string
	Platform string // Defaults to model.DefaultPlatform
}

// SyncOutput holds every record created or found during a sync.
type SyncOutput struct {
	Communication model.Communication
	Client        model.Client
	ClientCreated bool
	Project       model.Project
	Invoice       model.Invoice
}

// SyncCompleteEvent is the realtime payload for EventSyncComplete.
type SyncCompleteEvent struct {
	Project model.Project `json:"project"`
	Invoice model.Invoice `json:"invoice"`
	Client  model.Client  `json:"client"`
}

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ListInput is the pagination window for list operations.
type ListInput struct {
	Limit  int
	Offset int
}

type ListInvoicesInput struct {
	ListInput
	Status model.InvoiceStatus // Optional filter
}

type ListProjectsOutput struct {
	Projects []model.Project
	Total    int
}

type ListInvoicesOutput struct {
	Invoices []model.Invoice
	Total    int
}

type ListCommunicationsOutput struct {
	Communications []model.Communication
	Total          int
}

type ListClientsOutput struct {
	Clients []model.Client
	Total   int
}

type UpdateProjectStatusInput struct {
	ID     string
	Status model.ProjectStatus
}

type UpdateInvoiceStatusInput struct {
	ID     string
	Status model.InvoiceStatus
}

// StatsOutput summarizes the dashboard figures.
type StatsOutput struct {
	TotalRevenue float64 // Paid invoices
	Pending      float64 // Draft and Sent invoices
	Projects     int
	Clients      int
}
