package usecase

import (
	"context"
	"strings"
	"time"

	"atrova/internal/event"
	repo "atrova/internal/event/repository"
	"atrova/internal/model"
)

// Create validates and stores a new event. Color defaults to blue.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.CreateOutput, error) {
	ev := model.Event{
		Title:            strings.TrimSpace(input.Title),
		Description:      input.Description,
		Date:             input.Date,
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		Color:            input.Color,
		AIGenerated:      input.AIGenerated,
		IsRecurring:      input.IsRecurring,
		RecurringDays:    normalizeDays(input.RecurringDays),
		RecurringEndDate: input.RecurringEndDate,
	}
	if ev.Color == "" {
		ev.Color = model.ColorBlue
	}
	if err := uc.validate(ev); err != nil {
		return event.CreateOutput{}, err
	}

	created, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		OwnerID:          sc.UserID,
		Title:            ev.Title,
		Description:      ev.Description,
		Date:             ev.Date,
		StartTime:        ev.StartTime,
		EndTime:          ev.EndTime,
		Color:            ev.Color,
		AIGenerated:      ev.AIGenerated,
		IsRecurring:      ev.IsRecurring,
		RecurringDays:    ev.RecurringDays,
		RecurringEndDate: ev.RecurringEndDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.CreateOutput{}, err
	}
	return event.CreateOutput{Event: created}, nil
}

// List returns the caller's events, or only those occurring on input.On.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) (event.ListOutput, error) {
	var on time.Time
	if input.On != "" {
		var err error
		if on, err = time.Parse(event.DateLayout, input.On); err != nil {
			return event.ListOutput{}, event.ErrInvalidDate
		}
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{OwnerID: sc.UserID, On: input.On})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListOutput{}, err
	}
	if input.On == "" {
		return event.ListOutput{Events: events}, nil
	}

	out := events[:0]
	for _, ev := range events {
		if occursOn(ev, on) {
			out = append(out, ev)
		}
	}
	return event.ListOutput{Events: out}, nil
}

// Detail retrieves one of the caller's events.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.DetailOutput, error) {
	ev, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return event.DetailOutput{}, err
	}
	return event.DetailOutput{Event: ev}, nil
}

// Update applies a partial update to one of the caller's events.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input event.UpdateInput) (event.UpdateOutput, error) {
	ev, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return event.UpdateOutput{}, err
	}

	if input.Title != nil {
		ev.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		ev.Description = *input.Description
	}
	if input.Date != nil {
		ev.Date = *input.Date
	}
	if input.StartTime != nil {
		ev.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		ev.EndTime = *input.EndTime
	}
	if input.Color != nil {
		ev.Color = *input.Color
	}
	if input.IsRecurring != nil {
		ev.IsRecurring = *input.IsRecurring
	}
	if input.RecurringDays != nil {
		ev.RecurringDays = normalizeDays(input.RecurringDays)
	}
	if input.RecurringEndDate != nil {
		ev.RecurringEndDate = *input.RecurringEndDate
	}
	if !ev.IsRecurring {
		ev.RecurringDays, ev.RecurringEndDate = nil, ""
	}
	if err := uc.validate(ev); err != nil {
		return event.UpdateOutput{}, err
	}

	updated, err := uc.repo.UpdateEvent(ctx, ev)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEvent: %v", err)
		return event.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return event.UpdateOutput{}, event.ErrEventNotFound
	}
	return event.UpdateOutput{Event: updated}, nil
}

// Delete removes one of the caller's events.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwned(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteEvent(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}
	return nil
}
