package block

import (
	"errors"
	"time"

	"fleetbook/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrInvalidReason = errors.New("invalid block reason")

type Reason string

const (
	ReasonService   Reason = "Service"
	ReasonBreakdown Reason = "Breakdown"
	ReasonManual    Reason = "Manual"
)

func (r Reason) String() string { return string(r) }

func (r Reason) IsValid() bool {
	switch r {
	case ReasonService, ReasonBreakdown, ReasonManual:
		return true
	default:
		return false
	}
}

// Block is an administrative hold on one car for a closed date
// interval. Blocks always conflict with bookings regardless of booking
// status and are not subject to approval.
type Block struct {
	id        uuid.UUID
	carID     uuid.UUID
	dates     booking.DateRange
	reason    Reason
	details   string
	createdAt time.Time
}

func New(carID uuid.UUID, dates booking.DateRange, reason Reason, details string, now time.Time) (*Block, error) {
	if !reason.IsValid() {
		return nil, ErrInvalidReason
	}
	return &Block{
		id:        uuid.New(),
		carID:     carID,
		dates:     dates,
		reason:    reason,
		details:   details,
		createdAt: now,
	}, nil
}

func Reconstruct(id, carID uuid.UUID, dates booking.DateRange, reason Reason, details string, createdAt time.Time) *Block {
	return &Block{
		id:        id,
		carID:     carID,
		dates:     dates,
		reason:    reason,
		details:   details,
		createdAt: createdAt,
	}
}

func (b *Block) ID() uuid.UUID            { return b.id }
func (b *Block) CarID() uuid.UUID         { return b.carID }
func (b *Block) Dates() booking.DateRange { return b.dates }
func (b *Block) Reason() Reason           { return b.reason }
func (b *Block) Details() string          { return b.details }
func (b *Block) CreatedAt() time.Time     { return b.createdAt }
