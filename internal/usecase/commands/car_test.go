//go:build unit

package commands_test

import (
	"context"
	"testing"

	"fleetbook/internal/domain/block"
	"fleetbook/internal/domain/booking"
	"fleetbook/internal/domain/fleet"
	reqdto "fleetbook/internal/handler/dto/request"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCarQueries serves read-after-write lookups from the write repo.
type fakeCarQueries struct {
	repo *fakeCarRepo
}

func (q *fakeCarQueries) List(_ context.Context, _ *string) ([]*queries.CarView, error) {
	return nil, nil
}

func (q *fakeCarQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	c, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.CarView{
		ID:              c.ID,
		CarNumber:       c.CarNumber,
		Name:            c.Name,
		Registration:    c.Registration,
		CurrentRegion:   c.CurrentRegion,
		CurrentLocation: c.CurrentLocation,
		Status:          string(c.Status),
	}, nil
}

func newCarCommands(h *harness) commands.CarCommands {
	return commands.NewCarUseCase(h.uow, &fakeCarQueries{repo: h.uow.tx.cars}, clock.NewMockClock(testNow))
}

func strPtr(s string) *string { return &s }

func TestUpdateCarLocation(t *testing.T) {
	t.Run("updates only the provided fields", func(t *testing.T) {
		h := newHarness()
		uc := newCarCommands(h)

		view, err := uc.UpdateLocation(context.Background(), h.car.ID, reqdto.UpdateCarLocationRequest{
			CurrentRegion: strPtr("West"),
		})
		require.NoError(t, err)
		assert.Equal(t, "West", view.CurrentRegion)
		assert.Equal(t, h.car.CurrentLocation, view.CurrentLocation)
	})

	t.Run("unknown car", func(t *testing.T) {
		h := newHarness()
		uc := newCarCommands(h)

		_, err := uc.UpdateLocation(context.Background(), uuid.New(), reqdto.UpdateCarLocationRequest{
			CurrentRegion: strPtr("West"),
		})
		assert.ErrorIs(t, err, commands.ErrCarNotFound)
	})
}

func TestOverrideCarStatus(t *testing.T) {
	t.Run("pins a maintenance status", func(t *testing.T) {
		h := newHarness()
		uc := newCarCommands(h)

		view, err := uc.OverrideStatus(context.Background(), h.car.ID, reqdto.OverrideCarStatusRequest{
			Status: string(fleet.StatusBreakdown),
		})
		require.NoError(t, err)
		assert.Equal(t, string(fleet.StatusBreakdown), view.Status)
	})

	t.Run("booked cannot be set manually", func(t *testing.T) {
		h := newHarness()
		uc := newCarCommands(h)

		_, err := uc.OverrideStatus(context.Background(), h.car.ID, reqdto.OverrideCarStatusRequest{
			Status: string(fleet.StatusBooked),
		})
		assert.ErrorIs(t, err, commands.ErrInvalidStatusOverride)
	})

	t.Run("available re-derives from occupancy", func(t *testing.T) {
		h := newHarness()
		uc := newCarCommands(h)
		h.car.Status = fleet.StatusBreakdown
		h.uow.tx.availability.hasBookingToday = true

		view, err := uc.OverrideStatus(context.Background(), h.car.ID, reqdto.OverrideCarStatusRequest{
			Status: string(fleet.StatusAvailable),
		})
		require.NoError(t, err)
		assert.Equal(t, string(fleet.StatusBooked), view.Status)
	})

	t.Run("available honors a service block over a booking", func(t *testing.T) {
		h := newHarness()
		uc := newCarCommands(h)
		h.car.Status = fleet.StatusBreakdown
		h.uow.tx.availability.hasBookingToday = true

		today := booking.NormalizeDate(testNow)
		dates, err := booking.NewDateRange(today, today.AddDate(0, 0, 1))
		require.NoError(t, err)
		svc, err := block.New(h.car.ID, dates, block.ReasonService, "annual service", testNow)
		require.NoError(t, err)
		h.uow.tx.availability.blocksToday = []*block.Block{svc}

		view, err := uc.OverrideStatus(context.Background(), h.car.ID, reqdto.OverrideCarStatusRequest{
			Status: string(fleet.StatusAvailable),
		})
		require.NoError(t, err)
		assert.Equal(t, string(fleet.StatusInService), view.Status)
	})
}
