package gcalendar

import "time"

// TaskIDProperty is the private extended property linking an event to its task.
const TaskIDProperty = "atrova_task_id"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	TaskID      string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	// Timezone is an IANA name. Empty or "Local" leaves the zone to the RFC 3339 offset.
	Timezone string
}

// Event is the part of a Google Calendar event the task domain keeps.
type Event struct {
	ID        string
	TaskID    string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
