package repository

import "atrova/internal/model"

// CreateEventOptions holds parameters for inserting a new Event.
type CreateEventOptions struct {
	OwnerID          string
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

// GetOneEventOptions holds filter parameters for fetching a single Event.
type GetOneEventOptions struct {
	ID      string
	OwnerID string
}

// ListEventsOptions selects an owner's events. When On is set, one-off events on
// that date and recurring series spanning it are returned.
type ListEventsOptions struct {
	OwnerID string
	On      string
}
