package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atrova/internal/reminder"
	"atrova/pkg/log"
)

type countingUseCase struct {
	calls atomic.Int32
}

func (c *countingUseCase) Notify(context.Context, time.Time) (int, error) {
	c.calls.Add(1)
	return 0, nil
}

func TestNewRejectsSubSecondInterval(t *testing.T) {
	_, err := New(log.NewNop(), &countingUseCase{}, 500*time.Millisecond, time.UTC)
	assert.ErrorIs(t, err, reminder.ErrInvalidInterval)
}

func TestRunTicksUntilCancelled(t *testing.T) {
	uc := &countingUseCase{}
	s, err := New(log.NewNop(), uc, time.Second, time.UTC)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return uc.calls.Load() >= 1 }, 5*time.Second, 50*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
