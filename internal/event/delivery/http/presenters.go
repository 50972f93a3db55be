package http

import (
	"time"

	"atrova/internal/event"
	"atrova/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title            string   `json:"title"      binding:"required,max=255"`
	Description      string   `json:"description" binding:"max=2000"`
	Date             string   `json:"date"       binding:"required"`
	StartTime        string   `json:"start_time" binding:"required"`
	EndTime          string   `json:"end_time"   binding:"required"`
	Color            string   `json:"color"`
	AIGenerated      bool     `json:"ai_generated"`
	IsRecurring      bool     `json:"is_recurring"`
	RecurringDays    []string `json:"recurring_days"`
	RecurringEndDate string   `json:"recurring_end_date"`
}

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{
		Title:            r.Title,
		Description:      r.Description,
		Date:             r.Date,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Color:            model.EventColor(r.Color),
		AIGenerated:      r.AIGenerated,
		IsRecurring:      r.IsRecurring,
		RecurringDays:    r.RecurringDays,
		RecurringEndDate: r.RecurringEndDate,
	}
}

type listReq struct {
	On string `form:"on"`
}

func (r listReq) toInput() event.ListInput {
	return event.ListInput{On: r.On}
}

type updateReq struct {
	ID               string   `json:"-"`
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	Date             *string  `json:"date"`
	StartTime        *string  `json:"start_time"`
	EndTime          *string  `json:"end_time"`
	Color            *string  `json:"color"`
	IsRecurring      *bool    `json:"is_recurring"`
	RecurringDays    []string `json:"recurring_days"`
	RecurringEndDate *string  `json:"recurring_end_date"`
}

func (r updateReq) toInput() event.UpdateInput {
	in := event.UpdateInput{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Date:             r.Date,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		IsRecurring:      r.IsRecurring,
		RecurringDays:    r.RecurringDays,
		RecurringEndDate: r.RecurringEndDate,
	}
	if r.Color != nil {
		c := model.EventColor(*r.Color)
		in.Color = &c
	}
	return in
}

// --- Response DTOs ---

type eventResp struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             string    `json:"date"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	Color            string    `json:"color"`
	AIGenerated      bool      `json:"ai_generated"`
	IsRecurring      bool      `json:"is_recurring"`
	RecurringDays    []string  `json:"recurring_days,omitempty"`
	RecurringEndDate string    `json:"recurring_end_date,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:               ev.ID,
		Title:            ev.Title,
		Description:      ev.Description,
		Date:             ev.Date,
		StartTime:        ev.StartTime,
		EndTime:          ev.EndTime,
		Color:            string(ev.Color),
		AIGenerated:      ev.AIGenerated,
		IsRecurring:      ev.IsRecurring,
		RecurringDays:    ev.RecurringDays,
		RecurringEndDate: ev.RecurringEndDate,
		CreatedAt:        ev.CreatedAt,
		UpdatedAt:        ev.UpdatedAt,
	}
}

type eventEnvelope struct {
	Event eventResp `json:"event"`
}

type listResp struct {
	Events []eventResp `json:"events"`
}

func newListResp(out event.ListOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return listResp{Events: events}
}
