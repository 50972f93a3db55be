package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbsqlite "atrova/config/sqlite"
	"atrova/internal/event"
	"atrova/internal/event/repository/sqlite"
	"atrova/internal/model"
	"atrova/pkg/log"
)

var (
	alice = model.Scope{UserID: "alice", Source: model.SourceWeb}
	bob   = model.Scope{UserID: "bob", Source: model.SourceWeb}
)

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()
	ctx := context.Background()
	db, err := dbsqlite.Connect(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { dbsqlite.Disconnect(db) })
	gdb, err := dbsqlite.OpenGorm(db)
	require.NoError(t, err)
	r, err := sqlite.New(ctx, gdb, log.NewNop())
	require.NoError(t, err)
	return New(r, log.NewNop())
}

func validInput() event.CreateInput {
	return event.CreateInput{Title: "Standup", Date: "2024-01-01", StartTime: "09:00", EndTime: "09:15"}
}

func TestCreate(t *testing.T) {
	uc := newTestUseCase(t)
	out, err := uc.Create(context.Background(), alice, validInput())
	require.NoError(t, err)
	assert.Equal(t, model.ColorBlue, out.Event.Color)
	assert.Equal(t, "alice", out.Event.OwnerID)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*event.CreateInput)
		wantErr error
	}{
		{"empty title", func(in *event.CreateInput) { in.Title = " " }, event.ErrInvalidTitle},
		{"bad date", func(in *event.CreateInput) { in.Date = "01/02/2024" }, event.ErrInvalidDate},
		{"bad time", func(in *event.CreateInput) { in.StartTime = "9am" }, event.ErrInvalidTime},
		{"end before start", func(in *event.CreateInput) { in.EndTime = "08:00" }, event.ErrInvalidTimeRange},
		{"bad color", func(in *event.CreateInput) { in.Color = "teal" }, event.ErrInvalidColor},
		{"recurring without days", func(in *event.CreateInput) { in.IsRecurring = true }, event.ErrInvalidRecurrence},
		{"recurring bad day", func(in *event.CreateInput) { in.IsRecurring, in.RecurringDays = true, []string{"funday"} }, event.ErrInvalidRecurrence},
		{"recurring ends early", func(in *event.CreateInput) {
			in.IsRecurring, in.RecurringDays, in.RecurringEndDate = true, []string{"monday"}, "2023-12-31"
		}, event.ErrInvalidRecurrence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t)
			in := validInput()
			tt.mutate(&in)
			_, err := uc.Create(context.Background(), alice, in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestList_ExpandsRecurring(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	series := validInput()
	series.Title = "Gym"
	series.IsRecurring = true
	series.RecurringDays = []string{" Monday ", "wednesday", "monday"}
	created, err := uc.Create(ctx, alice, series)
	require.NoError(t, err)
	assert.Equal(t, []string{"monday", "wednesday"}, created.Event.RecurringDays)

	oneOff := validInput()
	oneOff.Date = "2024-01-03"
	_, err = uc.Create(ctx, alice, oneOff)
	require.NoError(t, err)

	// 2024-01-03 is a Wednesday: both match.
	out, err := uc.List(ctx, alice, event.ListInput{On: "2024-01-03"})
	require.NoError(t, err)
	assert.Len(t, out.Events, 2)

	// 2024-01-04 is a Thursday: neither.
	out, err = uc.List(ctx, alice, event.ListInput{On: "2024-01-04"})
	require.NoError(t, err)
	assert.Empty(t, out.Events)

	out, err = uc.List(ctx, bob, event.ListInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Events)

	_, err = uc.List(ctx, alice, event.ListInput{On: "tomorrow"})
	assert.ErrorIs(t, err, event.ErrInvalidDate)
}

func TestUpdateDelete(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, alice, validInput())
	require.NoError(t, err)
	id := created.Event.ID

	_, err = uc.Detail(ctx, bob, id)
	assert.ErrorIs(t, err, event.ErrEventNotFound)

	color := model.ColorPink
	end := "10:00"
	updated, err := uc.Update(ctx, alice, event.UpdateInput{ID: id, Color: &color, EndTime: &end})
	require.NoError(t, err)
	assert.Equal(t, model.ColorPink, updated.Event.Color)
	assert.Equal(t, "10:00", updated.Event.EndTime)
	assert.Equal(t, "Standup", updated.Event.Title)

	early := "08:00"
	_, err = uc.Update(ctx, alice, event.UpdateInput{ID: id, EndTime: &early})
	assert.ErrorIs(t, err, event.ErrInvalidTimeRange)

	assert.ErrorIs(t, uc.Delete(ctx, bob, id), event.ErrEventNotFound)
	require.NoError(t, uc.Delete(ctx, alice, id))
	_, err = uc.Detail(ctx, alice, id)
	assert.ErrorIs(t, err, event.ErrEventNotFound)
}

func TestOccursOn(t *testing.T) {
	ev := model.Event{Date: "2024-01-01", IsRecurring: true, RecurringDays: []string{"friday"}, RecurringEndDate: "2024-01-31"}
	day := func(s string) time.Time {
		d, _ := time.Parse(event.DateLayout, s)
		return d
	}

	assert.True(t, occursOn(ev, day("2024-01-01")))
	assert.True(t, occursOn(ev, day("2024-01-05")))
	assert.False(t, occursOn(ev, day("2024-01-06")))
	assert.False(t, occursOn(ev, day("2024-02-02")))
	assert.False(t, occursOn(ev, day("2023-12-29")))
}
