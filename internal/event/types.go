package event

import "atrova/internal/model"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type CreateInput struct {
	Title            string
	Description      string
	Date             string
	StartTime        string
	EndTime          string
	Color            model.EventColor
	AIGenerated      bool
	IsRecurring      bool
	RecurringDays    []string
	RecurringEndDate string
}

// ListInput selects the caller's events. With On set, only events occurring
// on that date are returned, recurring ones included.
type ListInput struct {
	On string
}

// UpdateInput is a partial update: nil fields keep their stored value.
type UpdateInput struct {
	ID               string
	Title            *string
	Description      *string
	Date             *string
	StartTime        *string
	EndTime          *string
	Color            *model.EventColor
	IsRecurring      *bool
	RecurringDays    []string
	RecurringEndDate *string
}

type CreateOutput struct {
	Event model.Event
}

type ListOutput struct {
	Events []model.Event
}

type DetailOutput struct {
	Event model.Event
}

type UpdateOutput struct {
	Event model.Event
}
