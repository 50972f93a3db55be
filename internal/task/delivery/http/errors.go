package http

import (
	"errors"
	"net/http"

	"atrova/internal/extraction"
	"atrova/internal/task"
	pkgErrors "atrova/pkg/errors"
)

var (
	errTaskNotFound     = pkgErrors.NewHTTPErrorWithStatus(http.StatusNotFound, 40401, "task not found")
	errEmptyInput       = pkgErrors.NewHTTPErrorWithStatus(http.StatusBadRequest, 40001, "message is empty")
	errInvalidTitle     = pkgErrors.NewHTTPErrorWithStatus(http.StatusBadRequest, 40002, "title is required")
	errInvalidPriority  = pkgErrors.NewHTTPErrorWithStatus(http.StatusBadRequest, 40003, "priority must be low, medium or high")
	errInvalidDuration  = pkgErrors.NewHTTPErrorWithStatus(http.StatusBadRequest, 40004, "duration must not be negative")
	errInvalidDueFilter = pkgErrors.NewHTTPErrorWithStatus(http.StatusBadRequest, 40005, "due must be today, tomorrow, next <weekday> or in N days")

	errUnderstandFailed = pkgErrors.NewHTTPErrorWithStatus(http.StatusUnprocessableEntity, 42201, "could not understand the message, please rephrase it")
	errInvalidTimestamp = pkgErrors.NewHTTPErrorWithStatus(http.StatusUnprocessableEntity, 42202, "could not work out when the task is due")
	errGenerationFailed = pkgErrors.NewHTTPErrorWithStatus(http.StatusBadGateway, 50201, "text generation failed, try again later")
)

// mapError translates task use case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, task.ErrEmptyInput):
		return errEmptyInput
	case errors.Is(err, task.ErrInvalidTitle):
		return errInvalidTitle
	case errors.Is(err, task.ErrInvalidPriority):
		return errInvalidPriority
	case errors.Is(err, task.ErrInvalidDuration):
		return errInvalidDuration
	case errors.Is(err, task.ErrInvalidDueFilter):
		return errInvalidDueFilter
	case errors.Is(err, task.ErrInvalidTimestamp):
		return errInvalidTimestamp
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// mapExtractionError reports the pipeline failure kind and step alongside the HTTP error.
func (h *handler) mapExtractionError(err error) (error, map[string]any, bool) {
	var extErr *extraction.Error
	if !errors.As(err, &extErr) {
		return nil, nil, false
	}

	data := map[string]any{"op": extErr.Op, "kind": extraction.KindName(err)}
	if errors.Is(err, extraction.ErrExtraction) {
		return errGenerationFailed, data, true
	}
	return errUnderstandFailed, data, true
}
