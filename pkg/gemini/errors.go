package gemini

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEmptyPrompt is returned when a request carries no prompt text.
	ErrEmptyPrompt = errors.New("gemini: prompt is empty")
	// ErrPromptBlocked is returned when safety filters reject the prompt itself.
	ErrPromptBlocked = errors.New("gemini: prompt blocked")
)

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	// Status is the canonical Google status such as RESOURCE_EXHAUSTED, when present.
	Status string
	Body   string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: API error %d %s: %s", e.StatusCode, e.Status, e.Body)
	}
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the same request may succeed later.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode == http.StatusRequestTimeout || e.StatusCode >= 500
}
