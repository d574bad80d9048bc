package commands

import (
	"context"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/domain/fleet"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"
)

type ApprovalCommands interface {
	Approve(ctx context.Context, reference, approver string) (*queries.BookingView, error)
	Reject(ctx context.Context, reference, approver, reason string) (*queries.BookingView, error)
}

type approvalUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	notifier       Notifier
	clock          clock.Clock
}

func NewApprovalUseCase(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	notifier Notifier,
	clock clock.Clock,
) ApprovalCommands {
	return &approvalUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		notifier:       notifier,
		clock:          clock,
	}
}

func (u *approvalUseCaseImpl) Approve(ctx context.Context, reference, approver string) (*queries.BookingView, error) {
	return u.transition(ctx, reference, EventBookingApproved, func(b *booking.Booking) error {
		return b.Approve(approver, u.clock.Now())
	})
}

func (u *approvalUseCaseImpl) Reject(ctx context.Context, reference, approver, reason string) (*queries.BookingView, error) {
	return u.transition(ctx, reference, EventBookingRejected, func(b *booking.Booking) error {
		return b.Reject(approver, reason, u.clock.Now())
	})
}

// transition applies a status change and re-derives the car status in
// the same transaction. Rejection frees the dates, so the car may flip
// back to Available here.
func (u *approvalUseCaseImpl) transition(
	ctx context.Context,
	reference string,
	event EventType,
	apply func(b *booking.Booking) error,
) (*queries.BookingView, error) {
	var (
		b   *booking.Booking
		car *fleet.Car
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		b, txErr = findBooking(ctx, tx, reference)
		if txErr != nil {
			return txErr
		}

		if txErr = apply(b); txErr != nil {
			return txErr
		}

		if txErr = tx.Bookings().Update(ctx, b); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		car, txErr = findCar(ctx, tx, b.CarID())
		if txErr != nil {
			return txErr
		}

		return refreshCarStatus(ctx, tx, b.CarID(), u.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	u.notifier.BookingEvent(event, snapshotOf(b, car))

	return u.bookingQueries.GetByReference(ctx, reference)
}
