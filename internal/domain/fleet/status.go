package fleet

import (
	"sort"

	"fleetbook/internal/domain/block"
)

// DeriveStatus computes a car's display status for "today" from the
// blocks active today and whether an active booking covers today.
//
// Rules, in order:
//  1. If any block is active today, the most recently created one wins:
//     Service -> In Service, Breakdown -> Breakdown. A Manual hold
//     blocks the calendar but never forces a non-Available status.
//  2. Otherwise an active booking covering today means Booked.
//  3. Otherwise Available.
func DeriveStatus(blocksToday []*block.Block, hasActiveBookingToday bool) Status {
	if len(blocksToday) > 0 {
		newest := newestBlock(blocksToday)
		switch newest.Reason() {
		case block.ReasonService:
			return StatusInService
		case block.ReasonBreakdown:
			return StatusBreakdown
		case block.ReasonManual:
			return StatusAvailable
		}
	}

	if hasActiveBookingToday {
		return StatusBooked
	}
	return StatusAvailable
}

func newestBlock(blocks []*block.Block) *block.Block {
	sorted := make([]*block.Block, len(blocks))
	copy(sorted, blocks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt().After(sorted[j].CreatedAt())
	})
	return sorted[0]
}
