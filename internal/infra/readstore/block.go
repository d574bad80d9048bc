package readstore

import (
	"context"
	"time"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BlockReadStore struct {
	db db.DBTX
}

func NewBlockReadStore(dbtx db.DBTX) *BlockReadStore {
	return &BlockReadStore{db: dbtx}
}

// FindActive returns blocks whose interval has not fully elapsed by
// the given day, optionally narrowed to one car.
func (r *BlockReadStore) FindActive(ctx context.Context, carID *uuid.UUID, onOrAfter time.Time) ([]*queries.BlockView, error) {
	sql := `
		SELECT id, car_id, start_date, end_date, reason, details, created_at
		FROM date_blocks
		WHERE end_date >= $1 AND ($2::uuid IS NULL OR car_id = $2)
		ORDER BY start_date, created_at`

	rows, err := r.db.Query(ctx, sql, pgconv.DateToPgtype(onOrAfter), carID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocks", err)
	}
	defer rows.Close()

	blocks := make([]*queries.BlockView, 0)
	for rows.Next() {
		var (
			v         queries.BlockView
			startDate pgtype.Date
			endDate   pgtype.Date
			details   string
		)
		if err := rows.Scan(
			&v.ID, &v.CarID, &startDate, &endDate,
			&v.Reason, &details, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan block row", err)
		}
		v.StartDate = pgconv.DateFromPgtype(startDate)
		v.EndDate = pgconv.DateFromPgtype(endDate)
		if details != "" {
			v.Details = &details
		}
		blocks = append(blocks, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read block list", err)
	}
	return blocks, nil
}
