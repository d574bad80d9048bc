//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fleetbook/internal/domain/fleet"
	reqdto "fleetbook/internal/handler/dto/request"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/config"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func newBookingCommands(h *harness) commands.BookingCommands {
	return commands.NewBookingUseCase(
		h.uow,
		&fakeBookingQueries{repo: h.uow.tx.bookings},
		h.notifier,
		clock.NewMockClock(testNow),
		config.BookingConfig{ReferencePrefix: "FLT", ReminderDays: 3},
	)
}

func createRequest(h *harness) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CarID:       h.car.ID,
		EventName:   "Campus Tour",
		ClientName:  "Asha Rao",
		ClientEmail: "asha@example.com",
		Region:      "South",
		City:        "Bangalore",
		StartDate:   "2026-05-01",
		EndDate:     "2026-05-05",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("creates a pending booking and notifies", func(t *testing.T) {
		h := newHarness()
		uc := newBookingCommands(h)

		view, err := uc.Create(context.Background(), createRequest(h), false)
		require.NoError(t, err)

		assert.Regexp(t, `^FLT-20260401-[A-Z0-9]{4}$`, view.Reference)
		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, []uuid.UUID{h.car.ID}, h.uow.tx.locked)

		require.Len(t, h.notifier.events, 1)
		assert.Equal(t, commands.EventBookingCreated, h.notifier.events[0].event)
		assert.Equal(t, "Campus Tour", h.notifier.events[0].snapshot.EventName)
	})

	t.Run("privileged creation is immediately approved", func(t *testing.T) {
		h := newHarness()
		uc := newBookingCommands(h)

		view, err := uc.Create(context.Background(), createRequest(h), true)
		require.NoError(t, err)
		assert.Equal(t, "approved", view.Status)
	})

	t.Run("overlap rejects the booking and alerts", func(t *testing.T) {
		h := newHarness()
		h.uow.tx.availability.conflicts = []shared.Conflict{
			{Kind: shared.ConflictBooking, Label: "FLT-20260301-ZZZZ"},
		}
		uc := newBookingCommands(h)

		_, err := uc.Create(context.Background(), createRequest(h), false)

		var conflictErr *commands.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Len(t, conflictErr.Conflicts, 1)
		assert.Empty(t, h.uow.tx.bookings.byRef, "nothing may be persisted on conflict")
		require.Len(t, h.notifier.conflicts, 1)
		assert.Equal(t, "Campus Tour", h.notifier.conflicts[0].EventName)
		assert.Empty(t, h.notifier.events)
	})

	t.Run("rejects inverted dates", func(t *testing.T) {
		h := newHarness()
		uc := newBookingCommands(h)

		req := createRequest(h)
		req.StartDate, req.EndDate = req.EndDate, req.StartDate
		_, err := uc.Create(context.Background(), req, false)
		assert.True(t, errors.Is(err, commands.ErrInvalidDates))
	})

	t.Run("rejects a city outside its region", func(t *testing.T) {
		h := newHarness()
		uc := newBookingCommands(h)

		req := createRequest(h)
		req.City = "Mumbai"
		_, err := uc.Create(context.Background(), req, false)
		assert.True(t, errors.Is(err, commands.ErrInvalidRegion))
	})

	t.Run("unknown car", func(t *testing.T) {
		h := newHarness()
		uc := newBookingCommands(h)

		req := createRequest(h)
		req.CarID = uuid.New()
		_, err := uc.Create(context.Background(), req, false)
		assert.ErrorIs(t, err, commands.ErrCarNotFound)
	})

	t.Run("booking today marks the car Booked", func(t *testing.T) {
		h := newHarness()
		h.uow.tx.availability.hasBookingToday = true
		uc := newBookingCommands(h)

		_, err := uc.Create(context.Background(), createRequest(h), false)
		require.NoError(t, err)
		assert.Equal(t, fleet.StatusBooked, h.car.Status)
	})

	t.Run("non-relocatable cars derive status the same way", func(t *testing.T) {
		h := newHarness()
		h.car.IsStatic = true
		h.uow.tx.availability.hasBookingToday = true
		uc := newBookingCommands(h)

		_, err := uc.Create(context.Background(), createRequest(h), false)
		require.NoError(t, err)
		assert.Equal(t, fleet.StatusBooked, h.car.Status)
	})
}

func TestUpdateBooking(t *testing.T) {
	start := func(h *harness) string {
		uc := newBookingCommands(h)
		view, err := uc.Create(context.Background(), createRequest(h), false)
		require.NoError(t, err)
		return view.Reference
	}

	t.Run("reschedules and excludes itself from the conflict scan", func(t *testing.T) {
		h := newHarness()
		ref := start(h)
		uc := newBookingCommands(h)

		newEnd := "2026-05-08"
		view, err := uc.Update(context.Background(), ref, reqdto.UpdateBookingRequest{EndDate: &newEnd})
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC), view.EndDate)
		require.NotNil(t, h.uow.tx.availability.lastExclude)

		stored, err := h.uow.tx.bookings.FindByReference(context.Background(), ref)
		require.NoError(t, err)
		assert.Equal(t, *h.uow.tx.availability.lastExclude, stored.ID())
	})

	t.Run("detail-only edits skip the conflict re-check", func(t *testing.T) {
		h := newHarness()
		ref := start(h)
		h.uow.tx.availability.conflicts = []shared.Conflict{{Kind: shared.ConflictBlock, Label: "Service"}}
		uc := newBookingCommands(h)

		name := "Renamed Expo"
		view, err := uc.Update(context.Background(), ref, reqdto.UpdateBookingRequest{EventName: &name})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Expo", view.EventName)
		assert.Len(t, h.uow.tx.locked, 1, "only the creation may take the car lock")
	})

	t.Run("conflicting reschedule fails", func(t *testing.T) {
		h := newHarness()
		ref := start(h)
		h.uow.tx.availability.conflicts = []shared.Conflict{{Kind: shared.ConflictBlock, Label: "Service"}}
		uc := newBookingCommands(h)

		newEnd := "2026-05-08"
		_, err := uc.Update(context.Background(), ref, reqdto.UpdateBookingRequest{EndDate: &newEnd})

		var conflictErr *commands.ConflictError
		assert.ErrorAs(t, err, &conflictErr)
	})

	t.Run("cancelled bookings cannot be edited", func(t *testing.T) {
		h := newHarness()
		ref := start(h)
		uc := newBookingCommands(h)
		require.NoError(t, uc.Cancel(context.Background(), ref))

		name := "New Name"
		_, err := uc.Update(context.Background(), ref, reqdto.UpdateBookingRequest{EventName: &name})
		assert.ErrorIs(t, err, commands.ErrBookingNotEditable)
	})

	t.Run("unknown reference", func(t *testing.T) {
		h := newHarness()
		uc := newBookingCommands(h)

		_, err := uc.Update(context.Background(), "FLT-00000000-XXXX", reqdto.UpdateBookingRequest{})
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("cancel notifies once and is idempotent", func(t *testing.T) {
		h := newHarness()
		uc := newBookingCommands(h)
		view, err := uc.Create(context.Background(), createRequest(h), false)
		require.NoError(t, err)
		h.notifier.events = nil

		require.NoError(t, uc.Cancel(context.Background(), view.Reference))
		require.Len(t, h.notifier.events, 1)
		assert.Equal(t, commands.EventBookingCancelled, h.notifier.events[0].event)

		// Second cancel succeeds without a second notification.
		require.NoError(t, uc.Cancel(context.Background(), view.Reference))
		assert.Len(t, h.notifier.events, 1)
	})

	t.Run("cancelling a rejected booking fails", func(t *testing.T) {
		h := newHarness()
		bookingUC := newBookingCommands(h)
		approvalUC := newApprovalCommands(h)

		view, err := bookingUC.Create(context.Background(), createRequest(h), false)
		require.NoError(t, err)
		_, err = approvalUC.Reject(context.Background(), view.Reference, "admin", "no car")
		require.NoError(t, err)

		err = bookingUC.Cancel(context.Background(), view.Reference)
		assert.True(t, errors.Is(err, commands.ErrDomainValidation))
	})
}
