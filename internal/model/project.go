package model

import "time"

// ProjectStatus is the board column of a project card.
type ProjectStatus string

const (
	ProjectStatusToDo       ProjectStatus = "To Do"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusInvoiced   ProjectStatus = "Invoiced"
	ProjectStatusPaid       ProjectStatus = "Paid"
)

// IsValid reports whether s is a known project status.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusToDo, ProjectStatusInProgress, ProjectStatusInvoiced, ProjectStatusPaid:
		return true
	}
	return false
}

// Project is a unit of work opened from a client message.
type Project struct {
	ID           string        `json:"id"`
	ClientName   string        `json:"clientName"`
	TaskTitle    string        `json:"taskTitle"`
	Budget       float64       `json:"budget"`
	Deadline     time.Time     `json:"deadline"`
	Status       ProjectStatus `json:"status"`
	CalendarLink string        `json:"calendarLink,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}
