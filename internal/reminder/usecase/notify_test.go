package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atrova/internal/model"
	"atrova/internal/reminder"
	"atrova/internal/task"
	"atrova/pkg/log"
)

type mockTaskUseCase struct {
	task.UseCase
	tasks []model.Task
	err   error
	input task.ListDueInput
}

func (m *mockTaskUseCase) ListDue(_ context.Context, input task.ListDueInput) ([]model.Task, error) {
	m.input = input
	return m.tasks, m.err
}

type sent struct {
	chatID int64
	text   string
}

type mockSender struct {
	sent []sent
	fail map[int64]bool
}

func (m *mockSender) SendMessage(chatID int64, text string) error {
	if m.fail[chatID] {
		return errors.New("blocked by user")
	}
	m.sent = append(m.sent, sent{chatID, text})
	return nil
}

func (m *mockSender) SendMessageWithMode(chatID int64, text, _ string) error {
	return m.SendMessage(chatID, text)
}

func dueTask(id, owner string, due time.Time) model.Task {
	return model.Task{ID: id, OwnerID: owner, Title: "task " + id, DueAt: &due}
}

func TestNotify(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	taskUC := &mockTaskUseCase{tasks: []model.Task{
		dueTask("1", model.TelegramOwnerID(42), now.Add(10*time.Minute)),
		dueTask("2", "web-user", now.Add(5*time.Minute)),
		{ID: "3", OwnerID: model.TelegramOwnerID(7)},
	}}
	sender := &mockSender{}
	uc := New(log.NewNop(), taskUC, sender, reminder.Config{Lookahead: 15 * time.Minute, Location: time.UTC})

	n, err := uc.Notify(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, now, taskUC.input.From)
	assert.Equal(t, now.Add(15*time.Minute), taskUC.input.To)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(42), sender.sent[0].chatID)
	assert.Equal(t, "Reminder: task 1\nDue: Mon Jan 1, 9:10 AM", sender.sent[0].text)

	// Second tick inside the window does not repeat the reminder.
	n, err = uc.Notify(context.Background(), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Len(t, sender.sent, 1)

	// A rescheduled task is announced again.
	taskUC.tasks[0] = dueTask("1", model.TelegramOwnerID(42), now.Add(12*time.Minute))
	n, err = uc.Notify(context.Background(), now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNotifySendFailureRetriesNextTick(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	taskUC := &mockTaskUseCase{tasks: []model.Task{dueTask("1", model.TelegramOwnerID(42), now.Add(time.Minute))}}
	sender := &mockSender{fail: map[int64]bool{42: true}}
	uc := New(log.NewNop(), taskUC, sender, reminder.Config{})

	n, err := uc.Notify(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	sender.fail = nil
	n, err = uc.Notify(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNotifyListError(t *testing.T) {
	taskUC := &mockTaskUseCase{err: errors.New("db down")}
	uc := New(log.NewNop(), taskUC, &mockSender{}, reminder.Config{})

	_, err := uc.Notify(context.Background(), time.Now())
	assert.Error(t, err)
}
