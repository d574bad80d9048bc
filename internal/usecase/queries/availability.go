package queries

import (
	"context"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	Check(ctx context.Context, carID uuid.UUID, dates booking.DateRange, excludeBookingID *uuid.UUID) (*AvailabilityResult, error)
	DailyBreakdown(ctx context.Context, carID uuid.UUID, dates booking.DateRange) ([]AvailabilityDay, error)
}

// AvailabilityStore is the read-side port over occupancy data. The
// same overlap predicate backs both the ad-hoc check and the
// transactional conflict scan inside the write path.
type AvailabilityStore interface {
	Conflicts(ctx context.Context, carID uuid.UUID, dates booking.DateRange, excludeBookingID *uuid.UUID) ([]shared.Conflict, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityStore
}

func NewAvailabilityQueries(store AvailabilityStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, carID uuid.UUID, dates booking.DateRange, excludeBookingID *uuid.UUID) (*AvailabilityResult, error) {
	conflicts, err := q.store.Conflicts(ctx, carID, dates, excludeBookingID)
	if err != nil {
		return nil, err
	}

	result := &AvailabilityResult{
		CarID:       carID,
		IsAvailable: len(conflicts) == 0,
		Conflicts:   make([]ConflictView, 0, len(conflicts)),
	}
	for _, c := range conflicts {
		result.Conflicts = append(result.Conflicts, toConflictView(c))
	}
	return result, nil
}

// DailyBreakdown expands a single range scan into per-day cells.
// Occupants are fetched once for the whole window, each day is then
// resolved in memory against the inclusive interval predicate.
func (q *availabilityQueriesImpl) DailyBreakdown(ctx context.Context, carID uuid.UUID, dates booking.DateRange) ([]AvailabilityDay, error) {
	conflicts, err := q.store.Conflicts(ctx, carID, dates, nil)
	if err != nil {
		return nil, err
	}
	return expandDays(dates, conflicts), nil
}

func expandDays(dates booking.DateRange, conflicts []shared.Conflict) []AvailabilityDay {
	days := dates.Days()
	out := make([]AvailabilityDay, 0, len(days))

	for _, day := range days {
		cell := AvailabilityDay{Date: day, IsAvailable: true}
		for _, c := range conflicts {
			rng, err := booking.NewDateRange(c.Start, c.End)
			if err != nil || !rng.Contains(day) {
				continue
			}
			cell.IsAvailable = false
			switch c.Kind {
			case shared.ConflictBooking:
				if cell.Booking == nil {
					cell.Booking = &DayBooking{
						Reference:  c.Label,
						EventName:  c.EventName,
						EventType:  c.EventType,
						ClientName: c.ClientName,
					}
				}
			case shared.ConflictBlock:
				if cell.Block == nil {
					cell.Block = &DayBlock{Reason: c.Label, Details: c.Details}
				}
			}
		}
		out = append(out, cell)
	}
	return out
}

// ToConflictViews converts write-side conflicts for API rendering.
func ToConflictViews(conflicts []shared.Conflict) []ConflictView {
	out := make([]ConflictView, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, toConflictView(c))
	}
	return out
}

func toConflictView(c shared.Conflict) ConflictView {
	return ConflictView{
		Kind:      string(c.Kind),
		Label:     c.Label,
		EventName: c.EventName,
		Details:   c.Details,
		StartDate: c.Start,
		EndDate:   c.End,
	}
}
