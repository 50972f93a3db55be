package http

import (
	"errors"
	"net/http"

	"atrova/internal/event"
	pkgErrors "atrova/pkg/errors"
)

// mapError translates event use case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPErrorWithStatus(http.StatusNotFound, 40411, "event not found")
	case errors.Is(err, event.ErrInvalidTitle),
		errors.Is(err, event.ErrInvalidDate),
		errors.Is(err, event.ErrInvalidTime),
		errors.Is(err, event.ErrInvalidTimeRange),
		errors.Is(err, event.ErrInvalidColor),
		errors.Is(err, event.ErrInvalidRecurrence):
		return pkgErrors.NewHTTPErrorWithStatus(http.StatusBadRequest, 40011, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
