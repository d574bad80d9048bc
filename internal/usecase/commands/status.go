package commands

import (
	"context"
	"time"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/domain/fleet"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// refreshCarStatus re-derives the cached car status from today's
// occupancy. It runs inside every write transaction that changes what
// occupies a car, so the cache never outlives the data it summarizes.
func refreshCarStatus(ctx context.Context, tx shared.Tx, carID uuid.UUID, now time.Time) error {
	car, err := tx.Cars().FindByID(ctx, carID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	today := booking.NormalizeDate(now)

	blocks, err := tx.Availability().BlocksOn(ctx, carID, today)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	hasBooking, err := tx.Availability().HasActiveBookingOn(ctx, carID, today)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	status := fleet.DeriveStatus(blocks, hasBooking)
	if status == car.Status {
		return nil
	}
	if err := tx.Cars().SetStatus(ctx, carID, status); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
