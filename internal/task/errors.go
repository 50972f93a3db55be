package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput       = errors.New("input text is empty")
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidTitle     = errors.New("task title is empty")
	ErrInvalidPriority  = errors.New("priority must be low, medium or high")
	ErrInvalidDuration  = errors.New("duration must not be negative")
	ErrInvalidDueFilter = errors.New("unrecognized due filter")
	ErrInvalidTimestamp = errors.New("extracted timestamp is not a valid date and time")
)
