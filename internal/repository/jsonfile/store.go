// Package jsonfile implements the event store as a single JSON document on
// disk, keyed by event name. Every operation loads the full document into
// memory and mutations rewrite it whole.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"countdown/internal/domain"
)

const eventsFileName = "events.json"

// storedEvent is the persisted representation of an event. RemainingDays is
// never stored; Status here is the status at creation time and is recomputed
// against "today" on every read.
type storedEvent struct {
	Name       string    `json:"name"`
	TargetDate string    `json:"target_date"`
	CreatedAt  time.Time `json:"created_at"`
	Status     string    `json:"status"`
}

// Store is the file-backed domain.EventStore. A mutex serializes the full
// load/modify/save cycle; that is the minimum required to keep the
// name-uniqueness invariant intact under concurrent HTTP requests.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// New returns a Store persisting under dir, creating the directory if needed.
// An empty dir falls back to ~/.countdown.
func New(dir string) (*Store, error) {
	return NewWithClock(dir, time.Now)
}

// NewWithClock is New with an injectable clock so tests can pin "today".
func NewWithClock(dir string, now func() time.Time) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".countdown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Store{path: filepath.Join(dir, eventsFileName), now: now}, nil
}

// load reads the full document. A missing file is an empty collection. A
// corrupt file is also treated as an empty collection; this lenient-recovery
// policy is deliberate and must be preserved (it can mask data loss, which is
// accepted). Read failures other than absence propagate unmasked.
func (s *Store) load() (map[string]storedEvent, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]storedEvent{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read events file: %w", err)
	}
	events := map[string]storedEvent{}
	if err := json.Unmarshal(data, &events); err != nil {
		return map[string]storedEvent{}, nil
	}
	return events, nil
}

func (s *Store) save(events map[string]storedEvent) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write events file: %w", err)
	}
	return nil
}

func (s *Store) toEvent(st storedEvent, today time.Time) (*domain.Event, error) {
	e := domain.NewEvent(st.Name, st.TargetDate, st.CreatedAt)
	if err := e.DeriveAt(today); err != nil {
		return nil, err
	}
	return e, nil
}

// Exists reports whether an event with the given name is stored.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events, err := s.load()
	if err != nil {
		return false, err
	}
	_, ok := events[name]
	return ok, nil
}

// Add persists a new event. The duplicate check here is defense-in-depth,
// independent of the service-level pre-check.
func (s *Store) Add(ctx context.Context, name, targetDate string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load()
	if err != nil {
		return nil, err
	}
	if _, ok := events[name]; ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrAlreadyExists, name)
	}

	now := s.now()
	target, err := domain.ParseTargetDate(targetDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCalendarDate, targetDate)
	}
	st := storedEvent{
		Name:       name,
		TargetDate: targetDate,
		CreatedAt:  now,
		Status:     domain.StatusOn(target, now),
	}
	events[name] = st
	if err := s.save(events); err != nil {
		return nil, err
	}
	return s.toEvent(st, now)
}

// Get returns the stored event with derived fields recomputed against the
// current date. The found flag is the absence signal; absence is not an error.
func (s *Store) Get(ctx context.Context, name string) (*domain.Event, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load()
	if err != nil {
		return nil, false, err
	}
	st, ok := events[name]
	if !ok {
		return nil, false, nil
	}
	e, err := s.toEvent(st, s.now())
	if err != nil {
		return nil, false, err
	}
	return e, true, nil
}

// List returns every stored event with freshly recomputed derived fields.
// Order is not guaranteed; callers sort as needed.
func (s *Store) List(ctx context.Context) ([]*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load()
	if err != nil {
		return nil, err
	}
	today := s.now()
	out := make([]*domain.Event, 0, len(events))
	for _, st := range events {
		e, err := s.toEvent(st, today)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Delete removes the event if present and reports whether a removal occurred.
func (s *Store) Delete(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := events[name]; !ok {
		return false, nil
	}
	delete(events, name)
	if err := s.save(events); err != nil {
		return false, err
	}
	return true, nil
}
