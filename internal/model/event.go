package model

import "time"

// EventColor is the calendar color of an event.
type EventColor string

const (
	ColorPink   EventColor = "pink"
	ColorMint   EventColor = "mint"
	ColorBlue   EventColor = "blue"
	ColorPurple EventColor = "purple"
	ColorOrange EventColor = "orange"
)

// IsValid reports whether c is one of the palette colors.
func (c EventColor) IsValid() bool {
	switch c {
	case ColorPink, ColorMint, ColorBlue, ColorPurple, ColorOrange:
		return true
	}
	return false
}

// Event is a calendar block. StartTime and EndTime are "HH:MM" on Date ("YYYY-MM-DD").
type Event struct {
	ID               string
	OwnerID          string
	Title            string
	Description      string
	Date             string
	StartTime        string
	EndTime          string
	Color            EventColor
	AIGenerated      bool
	IsRecurring      bool
	RecurringDays    []string // lowercase weekday names
	RecurringEndDate string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
