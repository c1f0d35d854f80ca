package gcalendar

import "context"

// ICalendar is the subset of Google Calendar used to schedule project deadlines.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (Event, error)
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
}
