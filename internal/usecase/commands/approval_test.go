//go:build unit

package commands_test

import (
	"context"
	"testing"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApprovalCommands(h *harness) commands.ApprovalCommands {
	return commands.NewApprovalUseCase(
		h.uow,
		&fakeBookingQueries{repo: h.uow.tx.bookings},
		h.notifier,
		clock.NewMockClock(testNow),
	)
}

func pendingBooking(t *testing.T, h *harness) string {
	t.Helper()
	view, err := newBookingCommands(h).Create(context.Background(), createRequest(h), false)
	require.NoError(t, err)
	h.notifier.events = nil
	return view.Reference
}

func TestApproveBooking(t *testing.T) {
	t.Run("approves a pending booking", func(t *testing.T) {
		h := newHarness()
		ref := pendingBooking(t, h)
		uc := newApprovalCommands(h)

		view, err := uc.Approve(context.Background(), ref, "ops-admin")
		require.NoError(t, err)
		assert.Equal(t, "approved", view.Status)

		require.Len(t, h.notifier.events, 1)
		assert.Equal(t, commands.EventBookingApproved, h.notifier.events[0].event)
	})

	t.Run("approving twice fails", func(t *testing.T) {
		h := newHarness()
		ref := pendingBooking(t, h)
		uc := newApprovalCommands(h)

		_, err := uc.Approve(context.Background(), ref, "ops-admin")
		require.NoError(t, err)
		_, err = uc.Approve(context.Background(), ref, "ops-admin")
		assert.ErrorIs(t, err, booking.ErrAlreadyApproved)
	})

	t.Run("unknown reference", func(t *testing.T) {
		h := newHarness()
		uc := newApprovalCommands(h)

		_, err := uc.Approve(context.Background(), "FLT-00000000-XXXX", "ops-admin")
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestRejectBooking(t *testing.T) {
	t.Run("records the reason and notifies", func(t *testing.T) {
		h := newHarness()
		ref := pendingBooking(t, h)
		uc := newApprovalCommands(h)

		view, err := uc.Reject(context.Background(), ref, "ops-admin", "car in workshop")
		require.NoError(t, err)
		assert.Equal(t, "rejected", view.Status)

		stored, err := h.uow.tx.bookings.FindByReference(context.Background(), ref)
		require.NoError(t, err)
		require.NotNil(t, stored.RejectionReason())
		assert.Equal(t, "car in workshop", *stored.RejectionReason())

		require.Len(t, h.notifier.events, 1)
		assert.Equal(t, commands.EventBookingRejected, h.notifier.events[0].event)
	})

	t.Run("blank reason gets the placeholder", func(t *testing.T) {
		h := newHarness()
		ref := pendingBooking(t, h)
		uc := newApprovalCommands(h)

		_, err := uc.Reject(context.Background(), ref, "ops-admin", "")
		require.NoError(t, err)

		stored, err := h.uow.tx.bookings.FindByReference(context.Background(), ref)
		require.NoError(t, err)
		require.NotNil(t, stored.RejectionReason())
		assert.Equal(t, "No reason provided", *stored.RejectionReason())
	})

	t.Run("rejecting an approved booking fails", func(t *testing.T) {
		h := newHarness()
		ref := pendingBooking(t, h)
		uc := newApprovalCommands(h)

		_, err := uc.Approve(context.Background(), ref, "ops-admin")
		require.NoError(t, err)
		_, err = uc.Reject(context.Background(), ref, "ops-admin", "too late")
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}
