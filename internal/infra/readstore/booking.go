package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewColumns = `
b.id, b.reference, b.event_name, b.event_type, b.client_name,
b.client_email, b.region, b.city, b.start_date, b.end_date, b.notes,
b.status, b.approved_by, b.approved_at, b.rejection_reason,
b.created_at, b.updated_at,
c.id, c.car_number, c.name, c.registration, c.current_region,
c.current_location, c.status, c.preferred_regions, c.is_static`

const findBookingViewByReferenceSQL = `
SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN cars c ON c.id = b.car_id
WHERE b.reference = $1`

func (r *BookingReadStore) FindByReference(ctx context.Context, reference string) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, findBookingViewByReferenceSQL, reference)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return view, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v               queries.BookingView
		eventType       string
		startDate       pgtype.Date
		endDate         pgtype.Date
		notes           string
		approvedBy      pgtype.Text
		approvedAt      pgtype.Timestamptz
		rejectionReason pgtype.Text
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.Reference, &v.EventName, &eventType, &v.ClientName,
		&v.ClientEmail, &v.Region, &v.City, &startDate, &endDate, &notes,
		&v.Status, &approvedBy, &approvedAt, &rejectionReason,
		&createdAt, &updatedAt,
		&v.Car.ID, &v.Car.CarNumber, &v.Car.Name, &v.Car.Registration,
		&v.Car.CurrentRegion, &v.Car.CurrentLocation, &v.Car.Status,
		&v.Car.PreferredRegions, &v.Car.IsStatic,
	)
	if err != nil {
		return nil, err
	}

	if eventType != "" {
		v.EventType = &eventType
	}
	if notes != "" {
		v.Notes = &notes
	}
	v.StartDate = pgconv.DateFromPgtype(startDate)
	v.EndDate = pgconv.DateFromPgtype(endDate)
	v.ApprovedBy = pgconv.StringPtrFromPgtype(approvedBy)
	v.ApprovedAt = pgconv.TimePtrFromPgtype(approvedAt)
	v.RejectionReason = pgconv.StringPtrFromPgtype(rejectionReason)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

// FindByFilter builds the WHERE clause dynamically; every filter is
// optional and they compose with AND.
func (r *BookingReadStore) FindByFilter(ctx context.Context, filter queries.BookingFilter, limit int32) ([]*queries.BookingListItem, error) {
	var (
		where []string
		args  []any
	)
	addArg := func(cond string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != nil {
		addArg("b.status = $%d", *filter.Status)
	}
	if filter.CarID != nil {
		addArg("b.car_id = $%d", *filter.CarID)
	}
	if filter.Region != nil {
		addArg("b.region = $%d", *filter.Region)
	}
	if filter.Reference != nil {
		addArg("b.reference = $%d", *filter.Reference)
	}
	if filter.DateFrom != nil {
		addArg("b.end_date >= $%d", pgconv.DateToPgtype(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		addArg("b.start_date <= $%d", pgconv.DateToPgtype(*filter.DateTo))
	}

	sql := `
SELECT b.id, b.reference, b.event_name, b.client_name, b.region, b.city,
       b.start_date, b.end_date, b.status, c.car_number, c.name, b.created_at
FROM bookings b
JOIN cars c ON c.id = b.car_id`
	if len(where) > 0 {
		sql += "\nWHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	sql += fmt.Sprintf("\nORDER BY b.start_date DESC, b.created_at DESC\nLIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item      queries.BookingListItem
			startDate pgtype.Date
			endDate   pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.Reference, &item.EventName, &item.ClientName,
			&item.Region, &item.City, &startDate, &endDate, &item.Status,
			&item.CarNumber, &item.CarName, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list row", err)
		}
		item.StartDate = pgconv.DateFromPgtype(startDate)
		item.EndDate = pgconv.DateFromPgtype(endDate)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list", err)
	}
	return items, nil
}

func (r *BookingReadStore) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by status", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status count", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read status counts", err)
	}
	return counts, nil
}

const countUpcomingSQL = `
SELECT COUNT(*) FROM bookings
WHERE status IN ('pending', 'approved')
  AND end_date >= $1`

func (r *BookingReadStore) CountUpcoming(ctx context.Context, from time.Time) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countUpcomingSQL, pgconv.DateToPgtype(from)).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count upcoming bookings", err)
	}
	return count, nil
}

const findStartingOnSQL = `
SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN cars c ON c.id = b.car_id
WHERE b.status = 'approved'
  AND b.start_date = $1`

// FindStartingOn serves the reminder sweep: approved bookings whose
// interval begins exactly on the given day.
func (r *BookingReadStore) FindStartingOn(ctx context.Context, day time.Time) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, findStartingOnSQL, pgconv.DateToPgtype(day))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings starting on day", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings starting on day", err)
	}
	return views, nil
}
