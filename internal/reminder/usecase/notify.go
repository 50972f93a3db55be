package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"atrova/internal/model"
	"atrova/internal/task"
)

const dueLayout = "Mon Jan 2, 3:04 PM"

// Notify implements reminder.UseCase.
func (uc *implUseCase) Notify(ctx context.Context, now time.Time) (int, error) {
	tasks, err := uc.taskUC.ListDue(ctx, task.ListDueInput{From: now, To: now.Add(uc.lookahead)})
	if err != nil {
		uc.l.Errorf(ctx, "reminder.usecase.Notify: ListDue: %v", err)
		return 0, err
	}

	sent := 0
	for _, t := range tasks {
		chatID, ok := model.ParseTelegramOwnerID(t.OwnerID)
		if !ok || t.DueAt == nil {
			continue
		}
		key := notifiedKey(t)
		if uc.notified.Contains(key) {
			continue
		}

		if err := uc.sender.SendMessage(chatID, formatReminder(t, uc.loc)); err != nil {
			uc.l.Warnf(ctx, "reminder.usecase.Notify: send task %s: %v", t.ID, err)
			continue
		}
		uc.notified.Add(key, struct{}{})
		sent++
	}

	if sent > 0 {
		uc.l.Infof(ctx, "reminder.usecase.Notify: sent %d reminder(s)", sent)
	}
	return sent, nil
}

// notifiedKey changes when the due time moves, so a rescheduled task is announced again.
func notifiedKey(t model.Task) string {
	return t.ID + "@" + strconv.FormatInt(t.DueAt.Unix(), 10)
}

func formatReminder(t model.Task, loc *time.Location) string {
	return fmt.Sprintf("Reminder: %s\nDue: %s", t.Title, t.DueAt.In(loc).Format(dueLayout))
}
