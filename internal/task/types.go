package task

import (
	"time"

	"atrova/internal/extraction"
	"atrova/internal/model"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	// DefaultDurationMinutes is the calendar block length for tasks without a duration.
	DefaultDurationMinutes = 60
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title           string
	DueAt           *time.Time
	Completed       bool
	Priority        model.Priority
	DurationMinutes int
}

type ListInput struct {
	Completed *bool
	// Due is a relative day such as "today", "tomorrow", "next friday" or "in 3 days".
	Due string
	// SortByDue orders by due time, undated tasks last. Default is newest first.
	SortByDue bool
	Limit     int
	Offset    int
}

// UpdateInput is a partial update: nil fields keep their stored value.
type UpdateInput struct {
	ID              string
	Title           *string
	DueAt           *time.Time
	ClearDue        bool
	Completed       *bool
	Priority        *model.Priority
	DurationMinutes *int
}

type CreateFromTextInput struct {
	Text string
	// ReceivedAt anchors relative phrases such as "tomorrow". Zero means now.
	ReceivedAt time.Time
}

type ListDueInput struct {
	From time.Time
	To   time.Time
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}

type CreateFromTextOutput struct {
	Task       model.Task
	Extraction extraction.ExtractedTask
}
