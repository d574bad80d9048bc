package queries

import (
	"context"
	"time"

	"fleetbook/internal/pkg/clock"
)

type BookingQueries interface {
	GetByReference(ctx context.Context, reference string) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, limit int) ([]*BookingListItem, error)
	Stats(ctx context.Context) (*BookingStats, error)
}

type BookingViewRepo interface {
	FindByReference(ctx context.Context, reference string) (*BookingView, error)
	FindByFilter(ctx context.Context, filter BookingFilter, limit int32) ([]*BookingListItem, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountUpcoming(ctx context.Context, from time.Time) (int64, error)
}

type bookingQueriesImpl struct {
	repo  BookingViewRepo
	clock clock.Clock
}

func NewBookingQueries(repo BookingViewRepo, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{repo: repo, clock: clock}
}

func (q *bookingQueriesImpl) GetByReference(ctx context.Context, reference string) (*BookingView, error) {
	return q.repo.FindByReference(ctx, reference)
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, limit int) ([]*BookingListItem, error) {
	if limit <= 0 {
		limit = 100
	}
	return q.repo.FindByFilter(ctx, filter, int32(limit))
}

func (q *bookingQueriesImpl) Stats(ctx context.Context) (*BookingStats, error) {
	counts, err := q.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := q.repo.CountUpcoming(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}

	stats := &BookingStats{
		Pending:   counts["pending"],
		Approved:  counts["approved"],
		Rejected:  counts["rejected"],
		Cancelled: counts["cancelled"],
		Upcoming:  upcoming,
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}
