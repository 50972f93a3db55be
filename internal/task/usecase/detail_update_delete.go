package usecase

import (
	"context"
	"strings"

	"atrova/internal/model"
	"atrova/internal/task"
	repo "atrova/internal/task/repository"
)

// Detail retrieves one of the caller's tasks. Returns ErrTaskNotFound for other owners' tasks.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update to one of the caller's tasks.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	opt := repo.UpdateTaskOptions{
		ID:              existing.ID,
		Title:           existing.Title,
		DueAt:           existing.DueAt,
		Completed:       existing.Completed,
		AIScheduled:     existing.AIScheduled,
		Priority:        existing.Priority,
		DurationMinutes: existing.DurationMinutes,
		CalendarEventID: existing.CalendarEventID,
		CalendarLink:    existing.CalendarLink,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return task.UpdateOutput{}, task.ErrInvalidTitle
		}
		opt.Title = title
	}
	if input.Priority != nil {
		opt.Priority = *input.Priority
	}
	if input.DurationMinutes != nil {
		opt.DurationMinutes = *input.DurationMinutes
	}
	if err := uc.validate(opt.Priority, opt.DurationMinutes); err != nil {
		return task.UpdateOutput{}, err
	}
	if input.Completed != nil {
		opt.Completed = *input.Completed
	}
	switch {
	case input.ClearDue:
		opt.DueAt = nil
		opt.AIScheduled = false
	case input.DueAt != nil:
		opt.DueAt = input.DueAt
		opt.AIScheduled = false
	}

	// A stale event is dropped whenever the block it describes changes.
	resync := calendarBlockChanged(existing, opt)
	if resync {
		opt.CalendarEventID, opt.CalendarLink = "", ""
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if t.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	if resync {
		uc.removeCalendarEvent(ctx, existing)
		t = uc.syncCalendar(ctx, t)
	}
	return task.UpdateOutput{Task: t}, nil
}

// calendarBlockChanged reports whether the due time, duration or title differ from the stored task.
func calendarBlockChanged(existing model.Task, opt repo.UpdateTaskOptions) bool {
	switch {
	case (existing.DueAt == nil) != (opt.DueAt == nil):
		return true
	case existing.DueAt != nil && !existing.DueAt.Equal(*opt.DueAt):
		return true
	}
	return existing.DurationMinutes != opt.DurationMinutes || existing.Title != opt.Title
}

// Delete removes one of the caller's tasks and its calendar event, if any.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	uc.removeCalendarEvent(ctx, existing)
	return nil
}
