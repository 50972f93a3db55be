package reminder

import (
	"context"
	"time"
)

// UseCase announces tasks that are about to fall due.
type UseCase interface {
	// Notify sends one reminder per open task due within the lookahead window after now
	// and returns how many were sent. Tasks already announced are skipped.
	Notify(ctx context.Context, now time.Time) (int, error)
}
