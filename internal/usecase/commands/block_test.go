//go:build unit

package commands_test

import (
	"context"
	"testing"

	"fleetbook/internal/domain/block"
	"fleetbook/internal/domain/fleet"
	reqdto "fleetbook/internal/handler/dto/request"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/usecase/commands"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlockCommands(h *harness) commands.BlockCommands {
	return commands.NewBlockUseCase(h.uow, clock.NewMockClock(testNow))
}

func TestCreateBlock(t *testing.T) {
	t.Run("creates a block and re-derives the car status", func(t *testing.T) {
		h := newHarness()
		uc := newBlockCommands(h)

		view, err := uc.Create(context.Background(), reqdto.CreateBlockRequest{
			CarID:     h.car.ID,
			StartDate: "2026-04-01",
			EndDate:   "2026-04-03",
			Reason:    "Breakdown",
		})
		require.NoError(t, err)
		assert.Equal(t, "Breakdown", view.Reason)

		// The status refresh sees the block through the availability
		// reader; mimic that here.
		stored, err := h.uow.tx.blocks.FindByID(context.Background(), view.ID)
		require.NoError(t, err)
		h.uow.tx.availability.blocksToday = []*block.Block{stored}

		_, err = uc.Create(context.Background(), reqdto.CreateBlockRequest{
			CarID:     h.car.ID,
			StartDate: "2026-04-02",
			EndDate:   "2026-04-02",
			Reason:    "Manual",
		})
		require.NoError(t, err)
		assert.Equal(t, fleet.StatusBreakdown, h.car.Status)
	})

	t.Run("invalid reason fails", func(t *testing.T) {
		h := newHarness()
		uc := newBlockCommands(h)

		_, err := uc.Create(context.Background(), reqdto.CreateBlockRequest{
			CarID:     h.car.ID,
			StartDate: "2026-04-01",
			EndDate:   "2026-04-03",
			Reason:    "Vacation",
		})
		assert.True(t, errors.Is(err, commands.ErrDomainValidation))
	})

	t.Run("unknown car fails", func(t *testing.T) {
		h := newHarness()
		uc := newBlockCommands(h)

		_, err := uc.Create(context.Background(), reqdto.CreateBlockRequest{
			CarID:     uuid.New(),
			StartDate: "2026-04-01",
			EndDate:   "2026-04-03",
			Reason:    "Service",
		})
		assert.ErrorIs(t, err, commands.ErrCarNotFound)
	})
}

func TestDeleteBlock(t *testing.T) {
	t.Run("removes the block and frees the car", func(t *testing.T) {
		h := newHarness()
		uc := newBlockCommands(h)

		view, err := uc.Create(context.Background(), reqdto.CreateBlockRequest{
			CarID:     h.car.ID,
			StartDate: "2026-04-01",
			EndDate:   "2026-04-03",
			Reason:    "Service",
		})
		require.NoError(t, err)

		require.NoError(t, uc.Delete(context.Background(), view.ID))
		assert.Empty(t, h.uow.tx.blocks.byID)
		assert.Equal(t, fleet.StatusAvailable, h.car.Status)
	})

	t.Run("unknown block", func(t *testing.T) {
		h := newHarness()
		uc := newBlockCommands(h)

		err := uc.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrBlockNotFound)
	})
}
