package domain

import "errors"

// Sentinel errors for event lifecycle operations. Validation errors are
// detected before any mutation is attempted; absence on reads is a found
// flag, not an error, so ErrNotFound only surfaces from operations that
// require the record to exist (update).
var (
	ErrInvalidName         = errors.New("invalid event name")
	ErrInvalidDateFormat   = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	ErrAlreadyExists       = errors.New("event already exists")
	ErrNotFound            = errors.New("event not found")
)
