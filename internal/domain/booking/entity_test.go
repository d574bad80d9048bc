//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fleetbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T, privileged bool) *booking.Booking {
	t.Helper()
	dates := mustRange(t, date(2026, 5, 1), date(2026, 5, 5))
	b, err := booking.NewBooking("FLT-20260401-AB12", booking.NewBookingSpec{
		CarID:       uuid.New(),
		EventName:   "Campus Tour",
		EventType:   "Sampling",
		ClientName:  "Asha Rao",
		ClientEmail: "asha@example.com",
		Region:      "South",
		City:        "Bangalore",
		Dates:       dates,
	}, privileged, date(2026, 4, 1))
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("starts pending for regular actors", func(t *testing.T) {
		b := newTestBooking(t, false)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.True(t, b.IsActive())
	})

	t.Run("starts approved for privileged actors", func(t *testing.T) {
		b := newTestBooking(t, true)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("requires event name", func(t *testing.T) {
		_, err := booking.NewBooking("FLT-20260401-XY99", booking.NewBookingSpec{
			CarID:       uuid.New(),
			ClientName:  "Asha Rao",
			ClientEmail: "asha@example.com",
		}, false, time.Now())
		assert.ErrorIs(t, err, booking.ErrMissingEventName)
	})
}

func TestApprove(t *testing.T) {
	now := date(2026, 4, 2)

	t.Run("pending to approved records audit fields", func(t *testing.T) {
		b := newTestBooking(t, false)
		require.NoError(t, b.Approve("admin", now))

		assert.Equal(t, booking.StatusApproved, b.Status())
		require.NotNil(t, b.ApprovedBy())
		assert.Equal(t, "admin", *b.ApprovedBy())
		require.NotNil(t, b.ApprovedAt())
		assert.Equal(t, now, *b.ApprovedAt())
	})

	t.Run("approving twice fails", func(t *testing.T) {
		b := newTestBooking(t, false)
		require.NoError(t, b.Approve("admin", now))
		assert.ErrorIs(t, b.Approve("admin", now), booking.ErrAlreadyApproved)
	})

	t.Run("approving a cancelled booking is invalid", func(t *testing.T) {
		b := newTestBooking(t, false)
		_, err := b.Cancel(now)
		require.NoError(t, err)
		assert.ErrorIs(t, b.Approve("admin", now), booking.ErrInvalidTransition)
	})
}

func TestReject(t *testing.T) {
	now := date(2026, 4, 2)

	t.Run("records supplied reason", func(t *testing.T) {
		b := newTestBooking(t, false)
		require.NoError(t, b.Reject("admin", "double parked", now))

		assert.Equal(t, booking.StatusRejected, b.Status())
		require.NotNil(t, b.RejectionReason())
		assert.Equal(t, "double parked", *b.RejectionReason())
		assert.False(t, b.IsActive())
	})

	t.Run("defaults the reason when none supplied", func(t *testing.T) {
		b := newTestBooking(t, false)
		require.NoError(t, b.Reject("admin", "  ", now))

		require.NotNil(t, b.RejectionReason())
		assert.Equal(t, "No reason provided", *b.RejectionReason())
	})

	t.Run("rejecting twice fails", func(t *testing.T) {
		b := newTestBooking(t, false)
		require.NoError(t, b.Reject("admin", "", now))
		assert.ErrorIs(t, b.Reject("admin", "", now), booking.ErrInvalidTransition)
	})

	t.Run("rejecting an approved booking fails", func(t *testing.T) {
		b := newTestBooking(t, true)
		assert.ErrorIs(t, b.Reject("admin", "", now), booking.ErrInvalidTransition)
	})
}

func TestCancel(t *testing.T) {
	now := date(2026, 4, 2)

	t.Run("cancels pending and approved bookings", func(t *testing.T) {
		for _, privileged := range []bool{false, true} {
			b := newTestBooking(t, privileged)
			changed, err := b.Cancel(now)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, booking.StatusCancelled, b.Status())
			assert.False(t, b.IsActive())
		}
	})

	t.Run("cancelling twice is a no-op success", func(t *testing.T) {
		b := newTestBooking(t, false)
		_, err := b.Cancel(now)
		require.NoError(t, err)

		changed, err := b.Cancel(now)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("cancelling a rejected booking is invalid", func(t *testing.T) {
		b := newTestBooking(t, false)
		require.NoError(t, b.Reject("admin", "", now))

		_, err := b.Cancel(now)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}
