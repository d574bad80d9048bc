package commands

import (
	"context"

	"fleetbook/internal/domain/block"
	reqdto "fleetbook/internal/handler/dto/request"
	"fleetbook/internal/infra"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBlockNotFound = errs.New("date block not found")

type BlockCommands interface {
	Create(ctx context.Context, req reqdto.CreateBlockRequest) (*queries.BlockView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blockUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBlockUseCase(uow shared.UnitOfWork, clock clock.Clock) BlockCommands {
	return &blockUseCaseImpl{uow: uow, clock: clock}
}

// Create registers a maintenance or manual block. Blocks may coexist
// with bookings on the same dates; they win the status derivation but
// never reject existing reservations.
func (u *blockUseCaseImpl) Create(ctx context.Context, req reqdto.CreateBlockRequest) (*queries.BlockView, error) {
	dates, err := req.ToDateRange()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDates)
	}

	now := u.clock.Now()

	var created *block.Block
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := findCar(ctx, tx, req.CarID); txErr != nil {
			return txErr
		}

		entity, txErr := block.New(req.CarID, dates, block.Reason(req.Reason), req.GetDetails(), now)
		if txErr != nil {
			return errs.Mark(txErr, ErrDomainValidation)
		}

		if txErr = tx.Blocks().Create(ctx, entity); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		created = entity

		return refreshCarStatus(ctx, tx, req.CarID, now)
	})
	if err != nil {
		return nil, err
	}

	return blockViewOf(created), nil
}

func (u *blockUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	now := u.clock.Now()

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, txErr := tx.Blocks().FindByID(ctx, id)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrBlockNotFound
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		if txErr = tx.Blocks().Delete(ctx, id); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		return refreshCarStatus(ctx, tx, existing.CarID(), now)
	})
}

func blockViewOf(b *block.Block) *queries.BlockView {
	view := &queries.BlockView{
		ID:        b.ID(),
		CarID:     b.CarID(),
		StartDate: b.Dates().Start(),
		EndDate:   b.Dates().End(),
		Reason:    string(b.Reason()),
		CreatedAt: b.CreatedAt(),
	}
	if details := b.Details(); details != "" {
		view.Details = &details
	}
	return view
}
