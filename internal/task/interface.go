package task

import (
	"context"

	"atrova/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// CreateFromText extracts a task name and due time from free-form chat text and stores the task.
	CreateFromText(ctx context.Context, sc model.Scope, input CreateFromTextInput) (CreateFromTextOutput, error)

	// ListDue returns open tasks of every owner due in [From, To].
	ListDue(ctx context.Context, input ListDueInput) ([]model.Task, error)
}
