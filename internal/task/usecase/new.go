package usecase

import (
	"context"
	"time"

	"atrova/internal/extraction"
	"atrova/internal/task/repository"
	"atrova/pkg/datemath"
	"atrova/pkg/gcalendar"
	"atrova/pkg/log"
)

// Calendar is the subset of the Google Calendar client the task use case pushes to.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo       repository.Repository
	extractor  extraction.UseCase
	parser     *datemath.Parser
	calendar   Calendar
	calendarID string
	l          log.Logger
	clock      func() time.Time
}

// New creates a new task UseCase implementation.
// calendar may be nil, in which case tasks are only stored locally.
func New(repo repository.Repository, extractor extraction.UseCase, parser *datemath.Parser, calendar Calendar, calendarID string, l log.Logger) *implUseCase {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &implUseCase{
		repo:       repo,
		extractor:  extractor,
		parser:     parser,
		calendar:   calendar,
		calendarID: calendarID,
		l:          l,
		clock:      time.Now,
	}
}
