package validator

import (
	"strings"
	"testing"

	"countdown/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	assert.NoError(t, Name("Birthday"))
	assert.NoError(t, Name("New Year's Eve 2027"))
	assert.NoError(t, Name(strings.Repeat("a", 256)))

	assert.ErrorIs(t, Name(""), domain.ErrInvalidName)
	assert.ErrorIs(t, Name(strings.Repeat("a", 257)), domain.ErrInvalidName)
	assert.ErrorIs(t, Name("bad\tname"), domain.ErrInvalidName)
	assert.ErrorIs(t, Name("bad\nname"), domain.ErrInvalidName)
}

func TestNameLengthCountsCharactersNotBytes(t *testing.T) {
	// 256 multi-byte characters are still within the limit.
	assert.NoError(t, Name(strings.Repeat("ü", 256)))
	assert.ErrorIs(t, Name(strings.Repeat("ü", 257)), domain.ErrInvalidName)
}

func TestDateFormat(t *testing.T) {
	assert.NoError(t, DateFormat("2026-03-15"))

	for _, bad := range []string{"", "2026/03/15", "15-03-2026", "2026-3-15", "2026-03-15T00:00:00", "tomorrow"} {
		assert.ErrorIs(t, DateFormat(bad), domain.ErrInvalidDateFormat, "input %q", bad)
	}
}

func TestDateValue(t *testing.T) {
	assert.NoError(t, DateValue("2026-03-15"))
	// Leap day in a leap year is valid.
	assert.NoError(t, DateValue("2024-02-29"))

	assert.ErrorIs(t, DateValue("2026-02-30"), domain.ErrInvalidCalendarDate)
	assert.ErrorIs(t, DateValue("2026-13-01"), domain.ErrInvalidCalendarDate)
	assert.ErrorIs(t, DateValue("2023-02-29"), domain.ErrInvalidCalendarDate)
}

func TestEventShortCircuits(t *testing.T) {
	// Name is checked first, then shape, then calendar value.
	assert.ErrorIs(t, Event("", "2026-02-30"), domain.ErrInvalidName)
	assert.ErrorIs(t, Event("ok", "2026-2-30"), domain.ErrInvalidDateFormat)
	assert.ErrorIs(t, Event("ok", "2026-02-30"), domain.ErrInvalidCalendarDate)
	require.NoError(t, Event("ok", "2026-02-28"))
}
