package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"countdown/internal/domain"
	"countdown/internal/validator"
)

type eventService struct {
	store          domain.EventStore
	contextTimeout time.Duration
}

// NewEventService returns the domain.EventService backed by store. The store
// is injected so tests can substitute an in-memory or temp-dir instance.
func NewEventService(store domain.EventStore, timeout time.Duration) domain.EventService {
	return &eventService{
		store:          store,
		contextTimeout: timeout,
	}
}

// Create validates the input, rejects duplicates, and persists the event.
// Validation happens before any mutation; there are no partial writes. The
// explicit Exists pre-check surfaces ErrAlreadyExists as a domain error even
// though the store enforces uniqueness again on Add.
func (s *eventService) Create(ctx context.Context, name, targetDate string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validator.Event(name, targetDate); err != nil {
		return nil, err
	}
	exists, err := s.store.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check event exists: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrAlreadyExists, name)
	}
	event, err := s.store.Add(ctx, name, targetDate)
	if err != nil {
		return nil, fmt.Errorf("add event: %w", err)
	}
	return event, nil
}

func (s *eventService) Get(ctx context.Context, name string) (*domain.Event, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.store.Get(ctx, name)
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) Delete(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.store.Delete(ctx, name)
}

// FilterByStatus returns the events whose current status equals status. An
// unrecognized status yields an empty slice, never an error.
func (s *eventService) FilterByStatus(ctx context.Context, status string) ([]*domain.Event, error) {
	events, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []*domain.Event{}
	for _, e := range events {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out, nil
}

// Update replaces the target date of an existing event. Update is not a
// primitive: it is delete-then-recreate under the same name. The new date is
// validated and the record's existence confirmed before the old record is
// removed, so a failing update can never destroy the record.
func (s *eventService) Update(ctx context.Context, name, targetDate string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validator.Event(name, targetDate); err != nil {
		return nil, err
	}
	_, found, err := s.store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, name)
	}
	if _, err := s.store.Delete(ctx, name); err != nil {
		return nil, fmt.Errorf("delete event: %w", err)
	}
	event, err := s.store.Add(ctx, name, targetDate)
	if err != nil {
		return nil, fmt.Errorf("recreate event: %w", err)
	}
	return event, nil
}

// Stats summarizes all events. The next event is the ACTIVE or CURRENT event
// with the fewest remaining days.
func (s *eventService) Stats(ctx context.Context) (*domain.Stats, error) {
	events, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{TotalEvents: len(events)}
	var upcoming []*domain.Event
	for _, e := range events {
		switch e.Status {
		case domain.StatusActive:
			stats.ActiveEvents++
			upcoming = append(upcoming, e)
		case domain.StatusCurrent:
			upcoming = append(upcoming, e)
		case domain.StatusExpired:
			stats.ExpiredEvents++
		}
	}
	if len(upcoming) > 0 {
		sort.Slice(upcoming, func(i, j int) bool {
			return upcoming[i].RemainingDays < upcoming[j].RemainingDays
		})
		stats.NextEvent = &upcoming[0].Name
		stats.NextEventDays = &upcoming[0].RemainingDays
	}
	return stats, nil
}
