package repository

import (
	"time"

	"atrova/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	OwnerID         string
	Title           string
	DueAt           *time.Time
	Completed       bool
	AIScheduled     bool
	Priority        model.Priority
	DurationMinutes int
	Source          model.TaskSource
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID      string
	OwnerID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	OwnerID   string
	Completed *bool
	DueFrom   *time.Time
	DueTo     *time.Time
	Limit     int
	Offset    int
	OrderBy   string
}

// UpdateTaskOptions replaces every mutable column of a Task.
type UpdateTaskOptions struct {
	ID              string
	Title           string
	DueAt           *time.Time
	Completed       bool
	AIScheduled     bool
	Priority        model.Priority
	DurationMinutes int
	CalendarEventID string
	CalendarLink    string
}

// ListDueBetweenOptions selects open tasks with a due time in [From, To].
type ListDueBetweenOptions struct {
	From  time.Time
	To    time.Time
	Limit int
}
