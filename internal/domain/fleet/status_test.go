//go:build unit

package fleet_test

import (
	"testing"
	"time"

	"fleetbook/internal/domain/block"
	"fleetbook/internal/domain/booking"
	"fleetbook/internal/domain/fleet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlock(t *testing.T, reason block.Reason, createdAt time.Time) *block.Block {
	t.Helper()
	dates, err := booking.NewDateRange(createdAt, createdAt.AddDate(0, 0, 7))
	require.NoError(t, err)
	b, err := block.New(uuid.New(), dates, reason, "", createdAt)
	require.NoError(t, err)
	return b
}

func TestDeriveStatus(t *testing.T) {
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		blocks     []*block.Block
		hasBooking bool
		want       fleet.Status
	}{
		{"no blocks no bookings", nil, false, fleet.StatusAvailable},
		{"active booking only", nil, true, fleet.StatusBooked},
		{
			"service block",
			[]*block.Block{testBlock(t, block.ReasonService, day)},
			false,
			fleet.StatusInService,
		},
		{
			"breakdown block",
			[]*block.Block{testBlock(t, block.ReasonBreakdown, day)},
			false,
			fleet.StatusBreakdown,
		},
		{
			"manual block never forces a status",
			[]*block.Block{testBlock(t, block.ReasonManual, day)},
			false,
			fleet.StatusAvailable,
		},
		{
			"block wins over booking",
			[]*block.Block{testBlock(t, block.ReasonService, day)},
			true,
			fleet.StatusInService,
		},
		{
			"newest block wins",
			[]*block.Block{
				testBlock(t, block.ReasonService, day.Add(-48*time.Hour)),
				testBlock(t, block.ReasonBreakdown, day.Add(-1*time.Hour)),
			},
			false,
			fleet.StatusBreakdown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, fleet.DeriveStatus(tc.blocks, tc.hasBooking))
		})
	}
}
