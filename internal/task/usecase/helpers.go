package usecase

import (
	"context"
	"time"

	"atrova/internal/model"
	"atrova/internal/task"
	repo "atrova/internal/task/repository"
	"atrova/pkg/gcalendar"
)

// getOwned loads a task and hides it unless it belongs to the caller.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	if id == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (uc *implUseCase) validate(p model.Priority, durationMinutes int) error {
	if p != "" && !p.IsValid() {
		return task.ErrInvalidPriority
	}
	if durationMinutes < 0 {
		return task.ErrInvalidDuration
	}
	return nil
}

// syncCalendar pushes a dated task to Google Calendar and records the event on the task.
// Calendar failures are logged and never fail the task write.
func (uc *implUseCase) syncCalendar(ctx context.Context, t model.Task) model.Task {
	if uc.calendar == nil || t.DueAt == nil {
		return t
	}

	duration := t.DurationMinutes
	if duration <= 0 {
		duration = task.DefaultDurationMinutes
	}
	start := t.DueAt.In(uc.parser.Location())
	ev, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		TaskID:      t.ID,
		Summary:     t.Title,
		Description: "Created by Atrova",
		StartTime:   start,
		EndTime:     start.Add(time.Duration(duration) * time.Minute),
		Timezone:    uc.parser.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncCalendar CreateEvent: %v", err)
		return t
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              t.ID,
		Title:           t.Title,
		DueAt:           t.DueAt,
		Completed:       t.Completed,
		AIScheduled:     t.AIScheduled,
		Priority:        t.Priority,
		DurationMinutes: t.DurationMinutes,
		CalendarEventID: ev.ID,
		CalendarLink:    ev.HtmlLink,
	})
	if err != nil || updated.ID == "" {
		uc.l.Warnf(ctx, "uc.syncCalendar UpdateTask: %v", err)
		return t
	}
	return updated
}

func (uc *implUseCase) removeCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.CalendarEventID == "" {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, t.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "uc.removeCalendarEvent DeleteEvent: %v", err)
	}
}
