package shared

import (
	"context"
	"time"

	"fleetbook/internal/domain/block"
	"fleetbook/internal/domain/booking"
	"fleetbook/internal/domain/fleet"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic.
	// The reservation path runs entirely inside one call: conflict
	// check, writes and status re-derivation commit or roll back as a
	// unit.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Blocks() BlockRepository
	Cars() CarRepository
	Availability() AvailabilityReader

	// LockCar takes a transaction-scoped advisory lock keyed by the car
	// id, serializing racing reservation attempts for the same car.
	LockCar(ctx context.Context, carID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	FindByReference(ctx context.Context, reference string) (*booking.Booking, error)
}

type BlockRepository interface {
	Create(ctx context.Context, b *block.Block) error
	FindByID(ctx context.Context, id uuid.UUID) (*block.Block, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CarRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*fleet.Car, error)
	SetStatus(ctx context.Context, id uuid.UUID, status fleet.Status) error
	UpdateLocation(ctx context.Context, id uuid.UUID, region, location *string) error
}

// AvailabilityReader is the transactional view of the availability
// store. Read-only paths use the same queries through the read side
// without locks.
type AvailabilityReader interface {
	Conflicts(ctx context.Context, carID uuid.UUID, dates booking.DateRange, excludeBookingID *uuid.UUID) ([]Conflict, error)
	BlocksOn(ctx context.Context, carID uuid.UUID, day time.Time) ([]*block.Block, error)
	HasActiveBookingOn(ctx context.Context, carID uuid.UUID, day time.Time) (bool, error)
}
