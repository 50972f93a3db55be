package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"atrova/internal/event/repository"
	"atrova/internal/model"
	"atrova/pkg/log"
)

// eventRecord is the gorm row for model.Event. Weekdays are stored comma separated.
type eventRecord struct {
	ID               string `gorm:"primaryKey"`
	OwnerID          string `gorm:"index:idx_events_owner_date,priority:1;not null"`
	Title            string `gorm:"not null"`
	Description      string
	Date             string `gorm:"index:idx_events_owner_date,priority:2;not null"`
	StartTime        string `gorm:"not null"`
	EndTime          string `gorm:"not null"`
	Color            string `gorm:"not null;default:blue"`
	AIGenerated      bool   `gorm:"not null;default:false"`
	IsRecurring      bool   `gorm:"not null;default:false"`
	RecurringDays    string
	RecurringEndDate string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (eventRecord) TableName() string { return "events" }

func (r eventRecord) toModel() model.Event {
	ev := model.Event{
		ID:               r.ID,
		OwnerID:          r.OwnerID,
		Title:            r.Title,
		Description:      r.Description,
		Date:             r.Date,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Color:            model.EventColor(r.Color),
		AIGenerated:      r.AIGenerated,
		IsRecurring:      r.IsRecurring,
		RecurringEndDate: r.RecurringEndDate,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.RecurringDays != "" {
		ev.RecurringDays = strings.Split(r.RecurringDays, ",")
	}
	return ev
}

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the event domain and migrates its table.
func New(ctx context.Context, db *gorm.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("event/repository/sqlite: db is required")
	}
	if err := db.WithContext(ctx).AutoMigrate(&eventRecord{}); err != nil {
		return nil, fmt.Errorf("event/repository/sqlite: migrate: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/sqlite.%s", method)
}
