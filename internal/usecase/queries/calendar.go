package queries

import (
	"context"

	"fleetbook/internal/domain/booking"

	"github.com/google/uuid"
)

type CalendarQueries interface {
	Build(ctx context.Context, dates booking.DateRange, region *string) ([]*CalendarRow, error)
}

type CarViewRepo interface {
	FindAll(ctx context.Context, region *string) ([]*CarView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type calendarQueriesImpl struct {
	cars         CarViewRepo
	availability AvailabilityStore
}

func NewCalendarQueries(cars CarViewRepo, availability AvailabilityStore) CalendarQueries {
	return &calendarQueriesImpl{cars: cars, availability: availability}
}

// Build produces one row per car over the window. Each row carries the
// per-day cells plus run-length bars so consumers can render spanning
// segments without re-deriving them.
func (q *calendarQueriesImpl) Build(ctx context.Context, dates booking.DateRange, region *string) ([]*CalendarRow, error) {
	cars, err := q.cars.FindAll(ctx, region)
	if err != nil {
		return nil, err
	}

	rows := make([]*CalendarRow, 0, len(cars))
	for _, car := range cars {
		conflicts, err := q.availability.Conflicts(ctx, car.ID, dates, nil)
		if err != nil {
			return nil, err
		}
		days := expandDays(dates, conflicts)
		rows = append(rows, &CalendarRow{
			Car:  *car,
			Days: days,
			Bars: Bars(days),
		})
	}
	return rows, nil
}

// Bars collapses consecutive day cells occupied by the same booking
// reference or block reason into single segments. A bar breaks when
// the occupant changes, even across back-to-back bookings.
func Bars(days []AvailabilityDay) []CalendarBar {
	bars := make([]CalendarBar, 0)

	var current *CalendarBar
	var currentKey string

	flush := func() {
		if current != nil {
			bars = append(bars, *current)
			current = nil
			currentKey = ""
		}
	}

	for i, day := range days {
		kind, label := occupant(day)
		if kind == "" {
			flush()
			continue
		}

		key := kind + ":" + label
		if current != nil && key == currentKey {
			current.Length++
			current.EndDate = day.Date
			continue
		}

		flush()
		current = &CalendarBar{
			Kind:       kind,
			Label:      label,
			StartIndex: i,
			Length:     1,
			StartDate:  day.Date,
			EndDate:    day.Date,
		}
		currentKey = key
	}
	flush()

	return bars
}

func occupant(day AvailabilityDay) (kind, label string) {
	switch {
	case day.Booking != nil:
		return "booking", day.Booking.Reference
	case day.Block != nil:
		return "block", day.Block.Reason
	default:
		return "", ""
	}
}
