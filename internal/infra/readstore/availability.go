package readstore

import (
	"context"
	"time"

	"fleetbook/internal/domain/block"
	"fleetbook/internal/domain/booking"
	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// AvailabilityReadStore owns the occupancy queries. Every caller goes
// through the same inclusive interval predicate:
// start_date <= $to AND end_date >= $from.
type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

const overlappingBookingsSQL = `
SELECT reference, event_name, event_type, client_name, start_date, end_date
FROM bookings
WHERE car_id = $1
  AND status IN ('pending', 'approved')
  AND ($2::uuid IS NULL OR id <> $2)
  AND start_date <= $4
  AND end_date >= $3
ORDER BY start_date`

const overlappingBlocksSQL = `
SELECT reason, details, start_date, end_date
FROM date_blocks
WHERE car_id = $1
  AND start_date <= $3
  AND end_date >= $2
ORDER BY start_date`

func (r *AvailabilityReadStore) Conflicts(
	ctx context.Context,
	carID uuid.UUID,
	dates booking.DateRange,
	excludeBookingID *uuid.UUID,
) ([]shared.Conflict, error) {
	from := pgconv.DateToPgtype(dates.Start())
	to := pgconv.DateToPgtype(dates.End())

	conflicts := make([]shared.Conflict, 0)

	rows, err := r.db.Query(ctx, overlappingBookingsSQL, carID, excludeBookingID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan overlapping bookings", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reference  string
			eventName  string
			eventType  string
			clientName string
			startDate  pgtype.Date
			endDate    pgtype.Date
		)
		if err := rows.Scan(&reference, &eventName, &eventType, &clientName, &startDate, &endDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overlapping booking row", err)
		}
		conflicts = append(conflicts, shared.Conflict{
			Kind:       shared.ConflictBooking,
			Label:      reference,
			EventName:  eventName,
			EventType:  eventType,
			ClientName: clientName,
			Start:      pgconv.DateFromPgtype(startDate),
			End:        pgconv.DateFromPgtype(endDate),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overlapping bookings", err)
	}

	blockRows, err := r.db.Query(ctx, overlappingBlocksSQL, carID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan overlapping blocks", err)
	}
	defer blockRows.Close()

	for blockRows.Next() {
		var (
			reason    string
			details   string
			startDate pgtype.Date
			endDate   pgtype.Date
		)
		if err := blockRows.Scan(&reason, &details, &startDate, &endDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overlapping block row", err)
		}
		conflicts = append(conflicts, shared.Conflict{
			Kind:    shared.ConflictBlock,
			Label:   reason,
			Details: details,
			Start:   pgconv.DateFromPgtype(startDate),
			End:     pgconv.DateFromPgtype(endDate),
		})
	}
	if err := blockRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overlapping blocks", err)
	}

	return conflicts, nil
}

const blocksOnSQL = `
SELECT id, car_id, start_date, end_date, reason, details, created_at
FROM date_blocks
WHERE car_id = $1
  AND start_date <= $2
  AND end_date >= $2
ORDER BY created_at DESC`

func (r *AvailabilityReadStore) BlocksOn(ctx context.Context, carID uuid.UUID, day time.Time) ([]*block.Block, error) {
	rows, err := r.db.Query(ctx, blocksOnSQL, carID, pgconv.DateToPgtype(day))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan blocks for day", err)
	}
	defer rows.Close()

	blocks := make([]*block.Block, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			blockCar  uuid.UUID
			startDate pgtype.Date
			endDate   pgtype.Date
			reason    string
			details   string
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &blockCar, &startDate, &endDate, &reason, &details, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan block row", err)
		}
		dates, err := booking.NewDateRange(pgconv.DateFromPgtype(startDate), pgconv.DateFromPgtype(endDate))
		if err != nil {
			return nil, infra.WrapRepoErr("stored date block has invalid dates", err)
		}
		blocks = append(blocks, block.Reconstruct(id, blockCar, dates, block.Reason(reason), details, pgconv.TimeFromPgtype(createdAt)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blocks for day", err)
	}
	return blocks, nil
}

const hasActiveBookingOnSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE car_id = $1
      AND status IN ('pending', 'approved')
      AND start_date <= $2
      AND end_date >= $2
)`

func (r *AvailabilityReadStore) HasActiveBookingOn(ctx context.Context, carID uuid.UUID, day time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasActiveBookingOnSQL, carID, pgconv.DateToPgtype(day)).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check bookings for day", err)
	}
	return exists, nil
}
