package model

import "time"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TaskSource is the channel a task was created from.
type TaskSource string

const (
	SourceWeb      TaskSource = "web"
	SourceTelegram TaskSource = "telegram"
	SourceAPI      TaskSource = "api"
)

// Task is a to-do item owned by one user.
type Task struct {
	ID              string
	OwnerID         string
	Title           string
	DueAt           *time.Time // nil when the task has no due time
	Completed       bool
	AIScheduled     bool // DueAt came from the extraction pipeline
	Priority        Priority
	DurationMinutes int
	Source          TaskSource
	CalendarEventID string
	CalendarLink    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
