//go:build unit

package queries_test

import (
	"testing"
	"time"

	"fleetbook/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC)
}

func bookedDay(d int, ref string) queries.AvailabilityDay {
	return queries.AvailabilityDay{
		Date:    day(d),
		Booking: &queries.DayBooking{Reference: ref, EventName: "Event"},
	}
}

func blockedDay(d int, reason string) queries.AvailabilityDay {
	return queries.AvailabilityDay{
		Date:  day(d),
		Block: &queries.DayBlock{Reason: reason},
	}
}

func freeDay(d int) queries.AvailabilityDay {
	return queries.AvailabilityDay{Date: day(d), IsAvailable: true}
}

func TestBars(t *testing.T) {
	t.Run("empty window has no bars", func(t *testing.T) {
		assert.Empty(t, queries.Bars(nil))
		assert.Empty(t, queries.Bars([]queries.AvailabilityDay{freeDay(1), freeDay(2)}))
	})

	t.Run("consecutive days of one booking form a single bar", func(t *testing.T) {
		days := []queries.AvailabilityDay{
			freeDay(1),
			bookedDay(2, "FLT-20260401-AAAA"),
			bookedDay(3, "FLT-20260401-AAAA"),
			bookedDay(4, "FLT-20260401-AAAA"),
			freeDay(5),
		}

		want := []queries.CalendarBar{
			{
				Kind:       "booking",
				Label:      "FLT-20260401-AAAA",
				StartIndex: 1,
				Length:     3,
				StartDate:  day(2),
				EndDate:    day(4),
			},
		}
		if diff := cmp.Diff(want, queries.Bars(days)); diff != "" {
			t.Errorf("bars mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("back-to-back bookings break into separate bars", func(t *testing.T) {
		days := []queries.AvailabilityDay{
			bookedDay(1, "FLT-20260401-AAAA"),
			bookedDay(2, "FLT-20260401-AAAA"),
			bookedDay(3, "FLT-20260402-BBBB"),
			bookedDay(4, "FLT-20260402-BBBB"),
		}

		bars := queries.Bars(days)
		assert.Len(t, bars, 2)
		assert.Equal(t, "FLT-20260401-AAAA", bars[0].Label)
		assert.Equal(t, 2, bars[0].Length)
		assert.Equal(t, "FLT-20260402-BBBB", bars[1].Label)
		assert.Equal(t, 2, bars[1].StartIndex)
	})

	t.Run("booking and block alternate", func(t *testing.T) {
		days := []queries.AvailabilityDay{
			bookedDay(1, "FLT-20260401-AAAA"),
			blockedDay(2, "Service"),
			blockedDay(3, "Service"),
			freeDay(4),
			blockedDay(5, "Breakdown"),
		}

		bars := queries.Bars(days)
		assert.Len(t, bars, 3)
		assert.Equal(t, "booking", bars[0].Kind)
		assert.Equal(t, queries.CalendarBar{
			Kind:       "block",
			Label:      "Service",
			StartIndex: 1,
			Length:     2,
			StartDate:  day(2),
			EndDate:    day(3),
		}, bars[1])
		assert.Equal(t, "Breakdown", bars[2].Label)
		assert.Equal(t, 4, bars[2].StartIndex)
	})

	t.Run("booking takes precedence over block on shared days", func(t *testing.T) {
		mixed := queries.AvailabilityDay{
			Date:    day(1),
			Booking: &queries.DayBooking{Reference: "FLT-20260401-AAAA"},
			Block:   &queries.DayBlock{Reason: "Service"},
		}

		bars := queries.Bars([]queries.AvailabilityDay{mixed})
		assert.Len(t, bars, 1)
		assert.Equal(t, "booking", bars[0].Kind)
	})
}
