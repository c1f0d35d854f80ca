package model

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "Draft"
	InvoiceStatusSent  InvoiceStatus = "Sent"
	InvoiceStatusPaid  InvoiceStatus = "Paid"
)

// IsValid reports whether s is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid:
		return true
	}
	return false
}

// Invoice bills a client for a project.
type Invoice struct {
	ID        string        `json:"id"`
	Amount    float64       `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	ProjectID string        `json:"project"`
	ClientID  string        `json:"client"`
	CreatedAt time.Time     `json:"createdAt"`
}
