package extraction

import (
	"context"
	"time"
)

// Generator is the text generation capability the pipeline depends on.
// It returns a best-effort completion for prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// UseCase turns free-form chat text into a structured task.
type UseCase interface {
	// ExtractTaskName asks the model for the task name only.
	ExtractTaskName(ctx context.Context, text string) (TaskNameResult, error)

	// ExtractTimestamp asks the model for the moment the task occurs, resolving
	// relative phrases against now.
	ExtractTimestamp(ctx context.Context, text string, now time.Time) (TimestampResult, error)

	// Extract runs both sub-extractions anchored on req.ReceivedAt.
	Extract(ctx context.Context, req TaskRequest) (ExtractedTask, error)

	// GetTaskDetails runs Extract anchored on the current wall-clock time.
	GetTaskDetails(ctx context.Context, text string) (ExtractedTask, error)
}
