package event

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidTitle      = errors.New("event title is empty")
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime       = errors.New("times must be HH:MM")
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrInvalidColor      = errors.New("color must be pink, mint, blue, purple or orange")
	ErrInvalidRecurrence = errors.New("recurring events need weekday names and an end date not before the start date")
)
