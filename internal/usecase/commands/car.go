package commands

import (
	"context"

	"fleetbook/internal/domain/fleet"
	reqdto "fleetbook/internal/handler/dto/request"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidStatusOverride = errs.New("status cannot be set manually")

type CarCommands interface {
	UpdateLocation(ctx context.Context, id uuid.UUID, req reqdto.UpdateCarLocationRequest) (*queries.CarView, error)
	OverrideStatus(ctx context.Context, id uuid.UUID, req reqdto.OverrideCarStatusRequest) (*queries.CarView, error)
}

type carUseCaseImpl struct {
	uow        shared.UnitOfWork
	carQueries queries.CarQueries
	clock      clock.Clock
}

func NewCarUseCase(uow shared.UnitOfWork, carQueries queries.CarQueries, clock clock.Clock) CarCommands {
	return &carUseCaseImpl{uow: uow, carQueries: carQueries, clock: clock}
}

func (u *carUseCaseImpl) UpdateLocation(ctx context.Context, id uuid.UUID, req reqdto.UpdateCarLocationRequest) (*queries.CarView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := findCar(ctx, tx, id); txErr != nil {
			return txErr
		}
		if txErr := tx.Cars().UpdateLocation(ctx, id, req.CurrentRegion, req.CurrentLocation); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.carQueries.GetByID(ctx, id)
}

// OverrideStatus lets an operator pin a car to a maintenance status.
// Setting Available does not pin anything; it clears the override and
// re-derives the status from today's occupancy, so a car with an
// active booking flips straight back to Booked.
func (u *carUseCaseImpl) OverrideStatus(ctx context.Context, id uuid.UUID, req reqdto.OverrideCarStatusRequest) (*queries.CarView, error) {
	status := fleet.Status(req.Status)
	if !overridable(status) {
		return nil, ErrInvalidStatusOverride
	}

	now := u.clock.Now()

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := findCar(ctx, tx, id); txErr != nil {
			return txErr
		}
		if status == fleet.StatusAvailable {
			return refreshCarStatus(ctx, tx, id, now)
		}
		if txErr := tx.Cars().SetStatus(ctx, id, status); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.carQueries.GetByID(ctx, id)
}

func overridable(s fleet.Status) bool {
	for _, allowed := range fleet.OverridableStatuses() {
		if s == allowed {
			return true
		}
	}
	return false
}
