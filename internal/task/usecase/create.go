package usecase

import (
	"context"
	"fmt"
	"strings"

	"atrova/internal/extraction"
	"atrova/internal/model"
	"atrova/internal/task"
	repo "atrova/internal/task/repository"
)

// Create stores a task typed in by the user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrInvalidTitle
	}
	if err := uc.validate(input.Priority, input.DurationMinutes); err != nil {
		return task.CreateOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		OwnerID:         sc.UserID,
		Title:           title,
		DueAt:           input.DueAt,
		Completed:       input.Completed,
		Priority:        input.Priority,
		DurationMinutes: input.DurationMinutes,
		Source:          sc.Source,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: uc.syncCalendar(ctx, t)}, nil
}

// CreateFromText runs the extraction pipeline over free-form text and stores the result.
// Extraction errors are returned untouched so callers can tell the kinds apart.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input task.CreateFromTextInput) (task.CreateFromTextOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.CreateFromTextOutput{}, task.ErrEmptyInput
	}

	var extracted extraction.ExtractedTask
	var err error
	if input.ReceivedAt.IsZero() {
		extracted, err = uc.extractor.GetTaskDetails(ctx, text)
	} else {
		extracted, err = uc.extractor.Extract(ctx, extraction.TaskRequest{Text: text, ReceivedAt: input.ReceivedAt})
	}
	if err != nil {
		uc.l.Warnf(ctx, "uc.CreateFromText extract: %v", err)
		return task.CreateFromTextOutput{}, err
	}

	due, err := uc.parser.ParseTimestamp(extracted.Timestamp)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CreateFromText ParseTimestamp: %v", err)
		return task.CreateFromTextOutput{Extraction: extracted}, fmt.Errorf("%w: %q", task.ErrInvalidTimestamp, extracted.Timestamp)
	}

	title := strings.TrimSpace(extracted.Task)
	if title == "" {
		title = text
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		OwnerID:     sc.UserID,
		Title:       title,
		DueAt:       &due,
		AIScheduled: true,
		Priority:    model.PriorityMedium,
		Source:      sc.Source,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromText CreateTask: %v", err)
		return task.CreateFromTextOutput{}, err
	}

	uc.l.Infof(ctx, "uc.CreateFromText: task %s due %s for %s", t.ID, uc.parser.FormatTimestamp(due), sc.UserID)
	return task.CreateFromTextOutput{Task: uc.syncCalendar(ctx, t), Extraction: extracted}, nil
}
