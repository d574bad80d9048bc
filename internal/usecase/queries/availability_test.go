//go:build unit

package queries_test

import (
	"context"
	"testing"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityStore struct {
	conflicts []shared.Conflict
	err       error
}

func (s *stubAvailabilityStore) Conflicts(context.Context, uuid.UUID, booking.DateRange, *uuid.UUID) ([]shared.Conflict, error) {
	return s.conflicts, s.err
}

func TestCheck(t *testing.T) {
	carID := uuid.New()
	rng, err := booking.NewDateRange(day(1), day(5))
	require.NoError(t, err)

	t.Run("available when nothing overlaps", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&stubAvailabilityStore{})

		result, err := q.Check(context.Background(), carID, rng, nil)
		require.NoError(t, err)
		assert.True(t, result.IsAvailable)
		assert.Empty(t, result.Conflicts)
	})

	t.Run("reports every overlapping occupant", func(t *testing.T) {
		store := &stubAvailabilityStore{conflicts: []shared.Conflict{
			{Kind: shared.ConflictBooking, Label: "FLT-20260401-AAAA", Start: day(2), End: day(3)},
			{Kind: shared.ConflictBlock, Label: "Service", Start: day(4), End: day(6)},
		}}
		q := queries.NewAvailabilityQueries(store)

		result, err := q.Check(context.Background(), carID, rng, nil)
		require.NoError(t, err)
		assert.False(t, result.IsAvailable)
		require.Len(t, result.Conflicts, 2)
		assert.Equal(t, "booking", result.Conflicts[0].Kind)
		assert.Equal(t, "block", result.Conflicts[1].Kind)
	})
}

func TestDailyBreakdown(t *testing.T) {
	carID := uuid.New()
	rng, err := booking.NewDateRange(day(1), day(5))
	require.NoError(t, err)

	store := &stubAvailabilityStore{conflicts: []shared.Conflict{
		{
			Kind:       shared.ConflictBooking,
			Label:      "FLT-20260401-AAAA",
			EventName:  "Campus Tour",
			ClientName: "Asha Rao",
			Start:      day(2),
			End:        day(3),
		},
		{Kind: shared.ConflictBlock, Label: "Breakdown", Details: "gearbox", Start: day(3), End: day(4)},
	}}
	q := queries.NewAvailabilityQueries(store)

	days, err := q.DailyBreakdown(context.Background(), carID, rng)
	require.NoError(t, err)
	require.Len(t, days, 5)

	assert.True(t, days[0].IsAvailable)

	assert.False(t, days[1].IsAvailable)
	require.NotNil(t, days[1].Booking)
	assert.Equal(t, "FLT-20260401-AAAA", days[1].Booking.Reference)
	assert.Nil(t, days[1].Block)

	// Day 3 carries both occupants.
	assert.False(t, days[2].IsAvailable)
	require.NotNil(t, days[2].Booking)
	require.NotNil(t, days[2].Block)
	assert.Equal(t, "Breakdown", days[2].Block.Reason)

	assert.False(t, days[3].IsAvailable)
	assert.Nil(t, days[3].Booking)
	require.NotNil(t, days[3].Block)

	assert.True(t, days[4].IsAvailable)
}
