package queries

import (
	"context"
	"time"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/pkg/clock"

	"github.com/google/uuid"
)

type BlockQueries interface {
	// List returns blocks that have not ended yet, optionally for one car.
	List(ctx context.Context, carID *uuid.UUID) ([]*BlockView, error)
}

type BlockViewRepo interface {
	FindActive(ctx context.Context, carID *uuid.UUID, onOrAfter time.Time) ([]*BlockView, error)
}

type blockQueriesImpl struct {
	repo  BlockViewRepo
	clock clock.Clock
}

func NewBlockQueries(repo BlockViewRepo, clock clock.Clock) BlockQueries {
	return &blockQueriesImpl{repo: repo, clock: clock}
}

func (q *blockQueriesImpl) List(ctx context.Context, carID *uuid.UUID) ([]*BlockView, error) {
	today := booking.NormalizeDate(q.clock.Now())
	return q.repo.FindActive(ctx, carID, today)
}
