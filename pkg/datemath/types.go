package datemath

import "errors"

var (
	// ErrUnrecognized is returned when a phrase is not a date this parser understands.
	ErrUnrecognized = errors.New("unrecognized date phrase")
	// ErrPastDate is returned for phrases that can only resolve into the past.
	ErrPastDate = errors.New("date phrase resolves to the past")
	// ErrInvalidDate is returned for well-formed phrases naming a non-existent day.
	ErrInvalidDate = errors.New("invalid calendar date")
)
