package gcalendar

import "time"

const (
	// DefaultCalendarID is used when a request does not name a calendar.
	DefaultCalendarID = "primary"
	// DefaultTokenPath is where an installed-app OAuth token is looked up.
	DefaultTokenPath = "token.json"
)

// Config selects the credentials used to reach the Calendar API.
type Config struct {
	CredentialsPath string
	TokenPath       string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
