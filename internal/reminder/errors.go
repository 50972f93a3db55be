package reminder

import "errors"

var (
	ErrInvalidInterval = errors.New("reminder interval must be at least one second")
)
