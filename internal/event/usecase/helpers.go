package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"atrova/internal/event"
	repo "atrova/internal/event/repository"
	"atrova/internal/model"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (model.Event, error) {
	if id == "" {
		return model.Event{}, event.ErrEventNotFound
	}
	ev, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneEvent: %v", err)
		return model.Event{}, err
	}
	if ev.ID == "" {
		return model.Event{}, event.ErrEventNotFound
	}
	return ev, nil
}

func (uc *implUseCase) validate(ev model.Event) error {
	if ev.Title == "" {
		return event.ErrInvalidTitle
	}
	date, err := time.Parse(event.DateLayout, ev.Date)
	if err != nil {
		return event.ErrInvalidDate
	}
	start, errStart := time.Parse(event.TimeLayout, ev.StartTime)
	end, errEnd := time.Parse(event.TimeLayout, ev.EndTime)
	if errStart != nil || errEnd != nil {
		return event.ErrInvalidTime
	}
	if !end.After(start) {
		return event.ErrInvalidTimeRange
	}
	if !ev.Color.IsValid() {
		return event.ErrInvalidColor
	}

	if !ev.IsRecurring {
		return nil
	}
	if len(ev.RecurringDays) == 0 {
		return event.ErrInvalidRecurrence
	}
	for _, d := range ev.RecurringDays {
		if _, ok := weekdays[d]; !ok {
			return event.ErrInvalidRecurrence
		}
	}
	if ev.RecurringEndDate != "" {
		until, err := time.Parse(event.DateLayout, ev.RecurringEndDate)
		if err != nil || until.Before(date) {
			return event.ErrInvalidRecurrence
		}
	}
	return nil
}

// normalizeDays lowercases, trims and dedupes weekday names, keeping input order.
func normalizeDays(days []string) []string {
	if days == nil {
		return nil
	}
	out := make([]string, 0, len(days))
	for _, d := range days {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" && !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	return out
}

// occursOn reports whether ev takes place on day. Recurring events repeat on their
// weekdays from Date until RecurringEndDate inclusive.
func occursOn(ev model.Event, day time.Time) bool {
	d := day.Format(event.DateLayout)
	if ev.Date == d {
		return true
	}
	if !ev.IsRecurring || d < ev.Date || (ev.RecurringEndDate != "" && d > ev.RecurringEndDate) {
		return false
	}
	for _, name := range ev.RecurringDays {
		if wd, ok := weekdays[name]; ok && wd == day.Weekday() {
			return true
		}
	}
	return false
}
