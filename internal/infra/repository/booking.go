package repository

import (
	"context"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const insertBookingSQL = `
INSERT INTO bookings (
    id, reference, car_id, event_name, event_type, client_name,
    client_email, region, city, start_date, end_date, notes, status,
    approved_by, approved_at, rejection_reason, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
)`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(),
		b.Reference(),
		b.CarID(),
		b.EventName(),
		b.EventType(),
		b.ClientName(),
		b.ClientEmail(),
		b.Region(),
		b.City(),
		pgconv.DateToPgtype(b.Dates().Start()),
		pgconv.DateToPgtype(b.Dates().End()),
		b.Notes(),
		string(b.Status()),
		pgconv.StringPtrToPgtype(b.ApprovedBy()),
		pgconv.TimePtrToPgtype(b.ApprovedAt()),
		pgconv.StringPtrToPgtype(b.RejectionReason()),
		pgconv.TimeToPgtype(b.CreatedAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to create booking", err)
	}
	return nil
}

const updateBookingSQL = `
UPDATE bookings SET
    car_id = $2,
    event_name = $3,
    event_type = $4,
    client_name = $5,
    client_email = $6,
    region = $7,
    city = $8,
    start_date = $9,
    end_date = $10,
    notes = $11,
    status = $12,
    approved_by = $13,
    approved_at = $14,
    rejection_reason = $15,
    updated_at = $16
WHERE id = $1`

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, updateBookingSQL,
		b.ID(),
		b.CarID(),
		b.EventName(),
		b.EventType(),
		b.ClientName(),
		b.ClientEmail(),
		b.Region(),
		b.City(),
		pgconv.DateToPgtype(b.Dates().Start()),
		pgconv.DateToPgtype(b.Dates().End()),
		b.Notes(),
		string(b.Status()),
		pgconv.StringPtrToPgtype(b.ApprovedBy()),
		pgconv.TimePtrToPgtype(b.ApprovedAt()),
		pgconv.StringPtrToPgtype(b.RejectionReason()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const findBookingByReferenceSQL = `
SELECT id, reference, car_id, event_name, event_type, client_name,
       client_email, region, city, start_date, end_date, notes, status,
       approved_by, approved_at, rejection_reason, created_at, updated_at
FROM bookings
WHERE reference = $1`

func (r *BookingRepository) FindByReference(ctx context.Context, reference string) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, findBookingByReferenceSQL, reference)

	var (
		id              uuid.UUID
		ref             string
		carID           uuid.UUID
		eventName       string
		eventType       string
		clientName      string
		clientEmail     string
		region          string
		city            string
		startDate       pgtype.Date
		endDate         pgtype.Date
		notes           string
		status          string
		approvedBy      pgtype.Text
		approvedAt      pgtype.Timestamptz
		rejectionReason pgtype.Text
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &ref, &carID, &eventName, &eventType, &clientName,
		&clientEmail, &region, &city, &startDate, &endDate, &notes, &status,
		&approvedBy, &approvedAt, &rejectionReason, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by reference", err)
	}

	dates, err := booking.NewDateRange(pgconv.DateFromPgtype(startDate), pgconv.DateFromPgtype(endDate))
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid dates", err)
	}

	return booking.Reconstruct(
		id, ref, carID,
		eventName, eventType, clientName, clientEmail, region, city,
		dates, notes, booking.Status(status),
		pgconv.StringPtrFromPgtype(approvedBy),
		pgconv.TimePtrFromPgtype(approvedAt),
		pgconv.StringPtrFromPgtype(rejectionReason),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
