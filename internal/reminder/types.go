package reminder

import "time"

const (
	DefaultInterval  = time.Minute
	DefaultLookahead = 15 * time.Minute
)

// Config controls the reminder window.
type Config struct {
	Interval  time.Duration
	Lookahead time.Duration
	Location  *time.Location
}
