package qwen

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyPrompt is returned when a request carries no prompt text.
var ErrEmptyPrompt = errors.New("qwen: prompt is empty")

// APIError is a non-200 answer from a chat completions endpoint.
type APIError struct {
	StatusCode int
	// Message is error.message from the body when present, else the raw body.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("qwen: API error %d: %s", e.StatusCode, e.Message)
}

// Retryable reports whether the same request may succeed later.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode == http.StatusRequestTimeout || e.StatusCode >= 500
}
