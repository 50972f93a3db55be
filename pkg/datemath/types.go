package datemath

import (
	"errors"
	"time"
)

// TimestampLayout is the textual layout produced by the extraction pipeline.
const TimestampLayout = "2006-01-02 15:04:05"

var (
	// ErrUnknownExpression is returned for relative phrases the parser does not recognize.
	ErrUnknownExpression = errors.New("unknown relative date expression")
	// ErrInvalidTimestamp is returned when an absolute timestamp matches no accepted layout.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// DayRange is a whole calendar day in the parser's timezone.
type DayRange struct {
	Start time.Time
	End   time.Time
}
