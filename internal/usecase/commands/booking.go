package commands

import (
	"context"
	"fmt"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/domain/fleet"
	reqdto "fleetbook/internal/handler/dto/request"
	"fleetbook/internal/infra"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/config"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/pkg/patch"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

var (
	ErrCarNotFound             = errs.New("car not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidDates            = errs.New("invalid booking dates")
	ErrInvalidRegion           = errs.New("invalid region or city")
	ErrBookingNotEditable      = errs.New("booking can no longer be edited")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ConflictError carries every overlapping occupant so the API can show
// the caller exactly what is in the way.
type ConflictError struct {
	Conflicts []shared.Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested dates overlap %d existing entries", len(e.Conflicts))
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, privileged bool) (*queries.BookingView, error)
	Update(ctx context.Context, reference string, req reqdto.UpdateBookingRequest) (*queries.BookingView, error)
	Cancel(ctx context.Context, reference string) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	notifier       Notifier
	clock          clock.Clock
	refPrefix      string
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	notifier Notifier,
	clock clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		notifier:       notifier,
		clock:          clock,
		refPrefix:      cfg.ReferencePrefix,
	}
}

func (u *bookingUseCaseImpl) Create(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	privileged bool,
) (*queries.BookingView, error) {
	dates, err := req.ToDateRange()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDates)
	}
	if err := fleet.ValidateRegionCity(req.Region, req.City); err != nil {
		return nil, errs.Mark(err, ErrInvalidRegion)
	}

	now := u.clock.Now()

	var (
		created *booking.Booking
		car     *fleet.Car
	)
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		car, txErr = findCar(ctx, tx, req.CarID)
		if txErr != nil {
			return txErr
		}

		// The advisory lock serializes racing attempts on the same car
		// so the conflict scan and the insert observe a stable view.
		if txErr = tx.LockCar(ctx, req.CarID); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		conflicts, txErr := tx.Availability().Conflicts(ctx, req.CarID, dates, nil)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}

		entity, txErr := booking.NewBooking(booking.NewReference(u.refPrefix, now), booking.NewBookingSpec{
			CarID:       req.CarID,
			EventName:   req.EventName,
			EventType:   req.GetEventType(),
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			Region:      req.Region,
			City:        req.City,
			Dates:       dates,
			Notes:       patch.Coalesce(req.Notes, ""),
		}, privileged, now)
		if txErr != nil {
			return errs.Mark(txErr, ErrDomainValidation)
		}

		if txErr = tx.Bookings().Create(ctx, entity); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		created = entity

		return refreshCarStatus(ctx, tx, req.CarID, now)
	})
	if err != nil {
		var conflictErr *ConflictError
		if errors.As(err, &conflictErr) && car != nil {
			u.notifier.ConflictDetected(ConflictAttempt{
				EventName:   req.EventName,
				ClientName:  req.ClientName,
				ClientEmail: req.ClientEmail,
				StartDate:   dates.Start(),
				EndDate:     dates.End(),
				Car:         carSnapshotOf(car),
				Conflicts:   conflictErr.Conflicts,
			})
		}
		return nil, err
	}

	u.notifier.BookingEvent(EventBookingCreated, snapshotOf(created, car))

	return u.bookingQueries.GetByReference(ctx, created.Reference())
}

func (u *bookingUseCaseImpl) Update(
	ctx context.Context,
	reference string,
	req reqdto.UpdateBookingRequest,
) (*queries.BookingView, error) {
	now := u.clock.Now()

	var (
		updated *booking.Booking
		car     *fleet.Car
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, txErr := findBooking(ctx, tx, reference)
		if txErr != nil {
			return txErr
		}
		if !b.IsActive() {
			return ErrBookingNotEditable
		}

		oldCarID := b.CarID()
		newCarID := patch.Coalesce(req.CarID, oldCarID)

		dates := b.Dates()
		if req.StartDate != nil || req.EndDate != nil {
			dates, txErr = patchedRange(b.Dates(), req.StartDate, req.EndDate)
			if txErr != nil {
				return errs.Mark(txErr, ErrInvalidDates)
			}
		}

		region := patch.Coalesce(req.Region, b.Region())
		city := patch.Coalesce(req.City, b.City())
		if req.Region != nil || req.City != nil {
			if txErr = fleet.ValidateRegionCity(region, city); txErr != nil {
				return errs.Mark(txErr, ErrInvalidRegion)
			}
		}

		car, txErr = findCar(ctx, tx, newCarID)
		if txErr != nil {
			return txErr
		}

		// Only a car or date change can introduce a new overlap, so
		// detail-only edits skip the lock and the conflict re-check.
		carChanged := newCarID != oldCarID
		datesChanged := !dates.Equal(b.Dates())

		if carChanged || datesChanged {
			// Lock every involved car in a stable order to avoid
			// deadlocks between concurrent edits moving bookings in
			// opposite directions.
			for _, id := range lockOrder(oldCarID, newCarID) {
				if txErr = tx.LockCar(ctx, id); txErr != nil {
					return errs.Mark(txErr, ErrDatabaseOperationFailed)
				}
			}

			excludeID := b.ID()
			conflicts, txErr := tx.Availability().Conflicts(ctx, newCarID, dates, &excludeID)
			if txErr != nil {
				return errs.Mark(txErr, ErrDatabaseOperationFailed)
			}
			if len(conflicts) > 0 {
				return &ConflictError{Conflicts: conflicts}
			}
		}

		b.Reschedule(newCarID, dates, now)
		b.Relocate(region, city, now)
		b.UpdateDetails(req.EventName, req.EventType, req.ClientName, req.ClientEmail, req.Notes, now)

		if txErr = tx.Bookings().Update(ctx, b); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		if carChanged || datesChanged {
			if txErr = refreshCarStatus(ctx, tx, newCarID, now); txErr != nil {
				return txErr
			}
			if carChanged {
				if txErr = refreshCarStatus(ctx, tx, oldCarID, now); txErr != nil {
					return txErr
				}
			}
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifier.BookingEvent(EventBookingEdited, snapshotOf(updated, car))

	return u.bookingQueries.GetByReference(ctx, reference)
}

func (u *bookingUseCaseImpl) Cancel(ctx context.Context, reference string) error {
	now := u.clock.Now()

	var (
		cancelled *booking.Booking
		car       *fleet.Car
		changed   bool
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, txErr := findBooking(ctx, tx, reference)
		if txErr != nil {
			return txErr
		}

		changed, txErr = b.Cancel(now)
		if txErr != nil {
			return errs.Mark(txErr, ErrDomainValidation)
		}
		if !changed {
			return nil
		}

		if txErr = tx.Bookings().Update(ctx, b); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		car, txErr = findCar(ctx, tx, b.CarID())
		if txErr != nil {
			return txErr
		}
		cancelled = b

		return refreshCarStatus(ctx, tx, b.CarID(), now)
	})
	if err != nil {
		return err
	}

	if changed {
		u.notifier.BookingEvent(EventBookingCancelled, snapshotOf(cancelled, car))
	}
	return nil
}

func findCar(ctx context.Context, tx shared.Tx, id uuid.UUID) (*fleet.Car, error) {
	car, err := tx.Cars().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return car, nil
}

func findBooking(ctx context.Context, tx shared.Tx, reference string) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

func patchedRange(current booking.DateRange, start, end *string) (booking.DateRange, error) {
	s := current.Start()
	e := current.End()

	var err error
	if start != nil {
		if s, err = reqdto.ParseDate(*start); err != nil {
			return booking.DateRange{}, err
		}
	}
	if end != nil {
		if e, err = reqdto.ParseDate(*end); err != nil {
			return booking.DateRange{}, err
		}
	}
	return booking.NewDateRange(s, e)
}

func lockOrder(a, b uuid.UUID) []uuid.UUID {
	if a == b {
		return []uuid.UUID{a}
	}
	if a.String() < b.String() {
		return []uuid.UUID{a, b}
	}
	return []uuid.UUID{b, a}
}

func snapshotOf(b *booking.Booking, car *fleet.Car) BookingSnapshot {
	snap := BookingSnapshot{
		ID:          b.ID(),
		Reference:   b.Reference(),
		EventName:   b.EventName(),
		EventType:   b.EventType(),
		ClientName:  b.ClientName(),
		ClientEmail: b.ClientEmail(),
		Region:      b.Region(),
		City:        b.City(),
		StartDate:   b.Dates().Start(),
		EndDate:     b.Dates().End(),
		Status:      string(b.Status()),
	}
	if reason := b.RejectionReason(); reason != nil {
		snap.RejectionReason = *reason
	}
	if car != nil {
		snap.Car = carSnapshotOf(car)
	}
	return snap
}

func carSnapshotOf(c *fleet.Car) CarSnapshot {
	return CarSnapshot{
		ID:              c.ID,
		CarNumber:       c.CarNumber,
		Name:            c.Name,
		Registration:    c.Registration,
		CurrentRegion:   c.CurrentRegion,
		CurrentLocation: c.CurrentLocation,
		Status:          string(c.Status),
	}
}
