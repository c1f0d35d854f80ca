package repository

import (
	"time"

	"solosync/internal/model"
)

// ListOptions holds pagination parameters. Results are ordered newest first.
type ListOptions struct {
	Limit  int
	Offset int
}

type CreateCommunicationOptions struct {
	Platform string
	Content  string
}

type CreateClientOptions struct {
	Name    string
	Email   string
	Company string
	History []model.ClientEvent
}

// GetOneClientOptions holds filter parameters for fetching a single Client.
// All non-empty fields are applied as AND conditions.
type GetOneClientOptions struct {
	ID   string
	Name string
}

type CreateProjectOptions struct {
	ClientName   string
	TaskTitle    string
	Budget       float64
	Deadline     time.Time
	Status       model.ProjectStatus
	CalendarLink string
}

type UpdateProjectStatusOptions struct {
	ID     string
	Status model.ProjectStatus
}

type CreateInvoiceOptions struct {
	Amount    float64
	Status    model.InvoiceStatus
	ProjectID string
	ClientID  string
}

type ListInvoicesOptions struct {
	ListOptions
	Status model.InvoiceStatus
}

type UpdateInvoiceStatusOptions struct {
	ID     string
	Status model.InvoiceStatus
}
