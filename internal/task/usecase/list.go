package usecase

import (
	"context"
	"errors"
	"fmt"

	"atrova/internal/model"
	"atrova/internal/task"
	repo "atrova/internal/task/repository"
	"atrova/pkg/datemath"
)

// List returns the caller's tasks, optionally narrowed to one relative day.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = task.DefaultListLimit
	}
	if limit > task.MaxListLimit {
		limit = task.MaxListLimit
	}
	offset := max(input.Offset, 0)

	opt := repo.ListTasksOptions{
		OwnerID:   sc.UserID,
		Completed: input.Completed,
		Limit:     limit,
		Offset:    offset,
	}
	if input.SortByDue {
		opt.OrderBy = "due_at ASC"
	}
	if input.Due != "" {
		day, err := uc.parser.Day(input.Due, uc.clock())
		if errors.Is(err, datemath.ErrUnknownExpression) {
			return task.ListOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidDueFilter, input.Due)
		}
		if err != nil {
			return task.ListOutput{}, err
		}
		opt.DueFrom, opt.DueTo = &day.Start, &day.End
		opt.OrderBy = "due_at ASC"
	}

	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks, Total: total, Limit: limit, Offset: offset}, nil
}

// ListDue returns open tasks of every owner due in the window.
func (uc *implUseCase) ListDue(ctx context.Context, input task.ListDueInput) ([]model.Task, error) {
	tasks, err := uc.repo.ListDueBetween(ctx, repo.ListDueBetweenOptions{From: input.From, To: input.To})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListDue ListDueBetween: %v", err)
		return nil, err
	}
	return tasks, nil
}
