package sqlite

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	repo "atrova/internal/event/repository"
	"atrova/internal/model"
)

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	rec := eventRecord{
		ID:               uuid.NewString(),
		OwnerID:          opt.OwnerID,
		Title:            opt.Title,
		Description:      opt.Description,
		Date:             opt.Date,
		StartTime:        opt.StartTime,
		EndTime:          opt.EndTime,
		Color:            string(opt.Color),
		AIGenerated:      opt.AIGenerated,
		IsRecurring:      opt.IsRecurring,
		RecurringDays:    strings.Join(opt.RecurringDays, ","),
		RecurringEndDate: opt.RecurringEndDate,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}
	return rec.toModel(), nil
}

// GetOneEvent retrieves a single Event by the provided filters (AND condition).
// Returns zero-value Event (ID == "") when not found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.Event, error) {
	q := r.db.WithContext(ctx).Model(&eventRecord{})
	if opt.ID != "" {
		q = q.Where("id = ?", opt.ID)
	}
	if opt.OwnerID != "" {
		q = q.Where("owner_id = ?", opt.OwnerID)
	}

	var rec eventRecord
	err := q.Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.Event{}, repo.ErrFailedToGet
	}
	return rec.toModel(), nil
}

// ListEvents returns an owner's events ordered by date and start time.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", opt.OwnerID)
	if opt.On != "" {
		q = q.Where(
			r.db.Where("date = ?", opt.On).Or(
				"is_recurring = ? AND date <= ? AND (recurring_end_date = '' OR recurring_end_date >= ?)",
				true, opt.On, opt.On,
			),
		)
	}

	var recs []eventRecord
	if err := q.Order("date ASC, start_time ASC").Find(&recs).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}

	events := make([]model.Event, len(recs))
	for i, rec := range recs {
		events[i] = rec.toModel()
	}
	return events, nil
}

// UpdateEvent overwrites the mutable columns of ev. Returns zero-value Event when the ID does not exist.
func (r *implRepository) UpdateEvent(ctx context.Context, ev model.Event) (model.Event, error) {
	res := r.db.WithContext(ctx).Model(&eventRecord{}).Where("id = ?", ev.ID).Updates(map[string]any{
		"title":              ev.Title,
		"description":        ev.Description,
		"date":               ev.Date,
		"start_time":         ev.StartTime,
		"end_time":           ev.EndTime,
		"color":              string(ev.Color),
		"ai_generated":       ev.AIGenerated,
		"is_recurring":       ev.IsRecurring,
		"recurring_days":     strings.Join(ev.RecurringDays, ","),
		"recurring_end_date": ev.RecurringEndDate,
	})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), res.Error)
		return model.Event{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.Event{}, nil
	}
	return r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: ev.ID})
}

// DeleteEvent removes an Event by ID. Deleting a missing row is not an error.
func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&eventRecord{}).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
