package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"countdown/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakeToday = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

// fakeEventStore is an in-memory domain.EventStore for tests.
type fakeEventStore struct {
	byName map[string]*domain.Event
	err    error // if set, every call returns this error
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{byName: make(map[string]*domain.Event)}
}

func (f *fakeEventStore) Exists(ctx context.Context, name string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byName[name]
	return ok, nil
}

func (f *fakeEventStore) Add(ctx context.Context, name, targetDate string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byName[name]; ok {
		return nil, domain.ErrAlreadyExists
	}
	e := domain.NewEvent(name, targetDate, fakeToday)
	if err := e.DeriveAt(fakeToday); err != nil {
		return nil, err
	}
	f.byName[name] = e
	return e, nil
}

func (f *fakeEventStore) Get(ctx context.Context, name string) (*domain.Event, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	e, ok := f.byName[name]
	if !ok {
		return nil, false, nil
	}
	return e, true, nil
}

func (f *fakeEventStore) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.byName {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventStore) Delete(ctx context.Context, name string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.byName[name]; !ok {
		return false, nil
	}
	delete(f.byName, name)
	return true, nil
}

func newTestService(store domain.EventStore) domain.EventService {
	return NewEventService(store, 2*time.Second)
}

func TestCreateValidEvent(t *testing.T) {
	store := newFakeEventStore()
	svc := newTestService(store)

	event, err := svc.Create(context.Background(), "Birthday", "2099-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Birthday", event.Name)
	assert.Equal(t, "2099-01-01", event.TargetDate)
	assert.Equal(t, domain.StatusActive, event.Status)
	assert.Positive(t, event.RemainingDays)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	store := newFakeEventStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "2099-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, "ok", "01-01-2099")
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)

	_, err = svc.Create(ctx, "ok", "2026-02-30")
	assert.ErrorIs(t, err, domain.ErrInvalidCalendarDate)

	// Validation happens before any mutation.
	assert.Empty(t, store.byName)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	store := newFakeEventStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Birthday", "2099-01-01")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Birthday", "2100-01-01")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	// Idempotent rejection: the existing record is unchanged.
	got, found, err := svc.Get(ctx, "Birthday")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2099-01-01", got.TargetDate)
}

func TestGetAbsent(t *testing.T) {
	svc := newTestService(newFakeEventStore())

	event, found, err := svc.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, event)
}

func TestListNeverReturnsNil(t *testing.T) {
	svc := newTestService(newFakeEventStore())

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestDelete(t *testing.T) {
	store := newFakeEventStore()
	svc := newTestService(store)
	ctx := context.Background()

	removed, err := svc.Delete(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = svc.Create(ctx, "Birthday", "2099-01-01")
	require.NoError(t, err)

	removed, err = svc.Delete(ctx, "Birthday")
	require.NoError(t, err)
	assert.True(t, removed)

	_, found, err := svc.Get(ctx, "Birthday")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFilterByStatus(t *testing.T) {
	store := newFakeEventStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Future", "2099-01-01")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Today", fakeToday.Format(domain.DateLayout))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Past", "2000-01-01")
	require.NoError(t, err)

	active, err := svc.FilterByStatus(ctx, domain.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Future", active[0].Name)

	current, err := svc.FilterByStatus(ctx, domain.StatusCurrent)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "Today", current[0].Name)

	expired, err := svc.FilterByStatus(ctx, domain.StatusExpired)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "Past", expired[0].Name)
}

func TestFilterByUnrecognizedStatus(t *testing.T) {
	store := newFakeEventStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Future", "2099-01-01")
	require.NoError(t, err)

	events, err := svc.FilterByStatus(ctx, "BOGUS")
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestUpdateReplacesTargetDate(t *testing.T) {
	store := newFakeEventStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Birthday", "2099-01-01")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "Birthday", "2100-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2100-06-15", updated.TargetDate)

	got, found, err := svc.Get(ctx, "Birthday")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2100-06-15", got.TargetDate)
}

func TestUpdateAbsentName(t *testing.T) {
	svc := newTestService(newFakeEventStore())

	_, err := svc.Update(context.Background(), "nope", "2099-01-01")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateWithBadDateKeepsRecord(t *testing.T) {
	store := newFakeEventStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Birthday", "2099-01-01")
	require.NoError(t, err)

	// The new date is validated before the old record is deleted, so a bad
	// update cannot destroy the record.
	_, err = svc.Update(ctx, "Birthday", "2100-02-30")
	assert.ErrorIs(t, err, domain.ErrInvalidCalendarDate)

	got, found, err := svc.Get(ctx, "Birthday")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2099-01-01", got.TargetDate)
}

func TestStats(t *testing.T) {
	store := newFakeEventStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Far", "2099-01-01")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Soon", "2026-09-05")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Past", "2000-01-01")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, 2, stats.ActiveEvents)
	assert.Equal(t, 1, stats.ExpiredEvents)
	require.NotNil(t, stats.NextEvent)
	assert.Equal(t, "Soon", *stats.NextEvent)
	require.NotNil(t, stats.NextEventDays)
	assert.Equal(t, 5, *stats.NextEventDays)
}

func TestStatsEmptyStore(t *testing.T) {
	svc := newTestService(newFakeEventStore())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalEvents)
	assert.Nil(t, stats.NextEvent)
	assert.Nil(t, stats.NextEventDays)
}

func TestStoreErrorsPropagate(t *testing.T) {
	store := newFakeEventStore()
	store.err = errors.New("disk is unwritable")
	svc := newTestService(store)

	_, err := svc.Create(context.Background(), "Birthday", "2099-01-01")
	assert.ErrorContains(t, err, "disk is unwritable")

	_, err = svc.List(context.Background())
	assert.ErrorContains(t, err, "disk is unwritable")
}
