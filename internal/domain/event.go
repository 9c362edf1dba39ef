package domain

import (
	"context"
	"fmt"
	"time"
)

// DateLayout is the canonical storage and wire format for target dates.
// Calendar dates only; the system has no notion of time-of-day or timezones.
const DateLayout = "2006-01-02"

// Event status values, derived from the signed whole-day difference between
// the target date and "today".
const (
	StatusActive  = "ACTIVE"
	StatusCurrent = "CURRENT"
	StatusExpired = "EXPIRED"
)

// Event represents a countdown event. Name is the primary key; there is no
// surrogate id. Status and RemainingDays are derived fresh on every read and
// are never persisted (the stored status is only the status at creation time).
// swagger:model Event
type Event struct {
	Name          string    `json:"name"`
	TargetDate    string    `json:"target_date"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
	RemainingDays int       `json:"remaining_days"`
}

// NewEvent returns a new Event with the given fields. Derived fields are
// filled by the store on read.
func NewEvent(name, targetDate string, createdAt time.Time) *Event {
	return &Event{
		Name:       name,
		TargetDate: targetDate,
		CreatedAt:  createdAt,
	}
}

// ParseTargetDate parses canonical YYYY-MM-DD text into a calendar date.
func ParseTargetDate(text string) (time.Time, error) {
	return time.Parse(DateLayout, text)
}

// DaysUntil returns the signed whole-day difference between target and today.
// Both arguments are truncated to calendar dates first, so time-of-day on
// either side never changes the result. The difference is taken on Unix
// seconds rather than time.Duration, which would saturate for dates more than
// ~292 years apart.
func DaysUntil(target, today time.Time) int {
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int((t.Unix() - n.Unix()) / 86400)
}

// StatusOn returns the event status for the given target date as of today.
func StatusOn(target, today time.Time) string {
	switch d := DaysUntil(target, today); {
	case d > 0:
		return StatusActive
	case d == 0:
		return StatusCurrent
	default:
		return StatusExpired
	}
}

// RemainingDaysOn returns the displayed remaining days for the given target
// date as of today. Clamped to 0 from the target date onward; an EXPIRED
// event still reports 0, never a negative number.
func RemainingDaysOn(target, today time.Time) int {
	if d := DaysUntil(target, today); d > 0 {
		return d
	}
	return 0
}

// DeriveAt recomputes Status and RemainingDays from TargetDate as of today.
func (e *Event) DeriveAt(today time.Time) error {
	target, err := ParseTargetDate(e.TargetDate)
	if err != nil {
		return fmt.Errorf("stored target date %q: %w", e.TargetDate, err)
	}
	e.Status = StatusOn(target, today)
	e.RemainingDays = RemainingDaysOn(target, today)
	return nil
}

// Stats summarizes the stored events. NextEvent is the upcoming event with
// the fewest remaining days among ACTIVE and CURRENT events; nil when none.
// swagger:model Stats
type Stats struct {
	TotalEvents   int     `json:"total_events"`
	ActiveEvents  int     `json:"active_events"`
	ExpiredEvents int     `json:"expired_events"`
	NextEvent     *string `json:"next_event"`
	NextEventDays *int    `json:"next_event_days"`
}

// EventStore defines durable keyed persistence of events. Absence is reported
// through the found flag, not an error. Implementations must serialize the
// full read-modify-write cycle so the name-uniqueness invariant holds under
// concurrent callers.
type EventStore interface {
	Exists(ctx context.Context, name string) (bool, error)
	// Add persists a new event. Fails with ErrAlreadyExists if the name is
	// taken; this check is independent of the service-level pre-check.
	Add(ctx context.Context, name, targetDate string) (*Event, error)
	Get(ctx context.Context, name string) (*Event, bool, error)
	List(ctx context.Context) ([]*Event, error)
	Delete(ctx context.Context, name string) (removed bool, err error)
}

// EventService defines the lifecycle operations adapters should call. It is
// the only entry point that sequences validation and storage, so the CLI and
// HTTP surfaces can never disagree about an event's state.
type EventService interface {
	Create(ctx context.Context, name, targetDate string) (*Event, error)
	Get(ctx context.Context, name string) (*Event, bool, error)
	List(ctx context.Context) ([]*Event, error)
	Delete(ctx context.Context, name string) (removed bool, err error)
	// FilterByStatus returns the events whose current status equals status.
	// An unrecognized status yields an empty slice, never an error.
	FilterByStatus(ctx context.Context, status string) ([]*Event, error)
	// Update replaces the target date of an existing event. Fails with
	// ErrNotFound if the name is absent.
	Update(ctx context.Context, name, targetDate string) (*Event, error)
	Stats(ctx context.Context) (*Stats, error)
}
