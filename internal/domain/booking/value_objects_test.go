//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fleetbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("rejects end before start", func(t *testing.T) {
		_, err := booking.NewDateRange(date(2026, 5, 5), date(2026, 5, 1))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("single day range is valid", func(t *testing.T) {
		r := mustRange(t, date(2026, 5, 1), date(2026, 5, 1))
		assert.Equal(t, 1, r.LengthDays())
	})

	t.Run("normalizes time-of-day and zone", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+1800)
		r, err := booking.NewDateRange(
			time.Date(2026, 5, 1, 18, 30, 0, 0, ist),
			time.Date(2026, 5, 3, 9, 0, 0, 0, ist),
		)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 5, 1), r.Start())
		assert.Equal(t, date(2026, 5, 3), r.End())
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, date(2026, 5, 1), date(2026, 5, 5))

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{"exact match", date(2026, 5, 1), date(2026, 5, 5), true},
		{"partial overlap at tail", date(2026, 5, 3), date(2026, 5, 7), true},
		{"partial overlap at head", date(2026, 4, 28), date(2026, 5, 2), true},
		{"contained", date(2026, 5, 2), date(2026, 5, 4), true},
		{"containing", date(2026, 4, 1), date(2026, 6, 1), true},
		{"shared boundary day at end", date(2026, 5, 5), date(2026, 5, 9), true},
		{"shared boundary day at start", date(2026, 4, 25), date(2026, 5, 1), true},
		{"adjacent after", date(2026, 5, 6), date(2026, 5, 10), false},
		{"adjacent before", date(2026, 4, 25), date(2026, 4, 30), false},
		{"strictly outside", date(2026, 5, 10), date(2026, 5, 15), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustRange(t, tc.start, tc.end)
			assert.Equal(t, tc.overlaps, base.Overlaps(other))
			assert.Equal(t, tc.overlaps, other.Overlaps(base), "predicate must be symmetric")
		})
	}
}

func TestDateRangeDays(t *testing.T) {
	r := mustRange(t, date(2026, 5, 1), date(2026, 5, 3))
	days := r.Days()

	require.Len(t, days, 3)
	assert.Equal(t, date(2026, 5, 1), days[0])
	assert.Equal(t, date(2026, 5, 2), days[1])
	assert.Equal(t, date(2026, 5, 3), days[2])
}

func TestDateRangeContains(t *testing.T) {
	r := mustRange(t, date(2026, 7, 1), date(2026, 7, 5))

	assert.True(t, r.Contains(date(2026, 7, 1)))
	assert.True(t, r.Contains(date(2026, 7, 3)))
	assert.True(t, r.Contains(date(2026, 7, 5)))
	assert.False(t, r.Contains(date(2026, 6, 30)))
	assert.False(t, r.Contains(date(2026, 7, 6)))
}

func TestNewReference(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC)
	ref := booking.NewReference("FLT", now)

	assert.Regexp(t, `^FLT-20260501-[A-Z0-9]{4}$`, ref)

	// Two references generated at the same instant should still differ.
	other := booking.NewReference("FLT", now)
	assert.NotEqual(t, ref, other)
}
