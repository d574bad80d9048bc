package repository

import (
	"context"

	"fleetbook/internal/domain/block"
	"fleetbook/internal/domain/booking"
	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BlockRepository struct {
	db db.DBTX
}

func NewBlockRepository(dbtx db.DBTX) *BlockRepository {
	return &BlockRepository{db: dbtx}
}

const insertBlockSQL = `
INSERT INTO date_blocks (id, car_id, start_date, end_date, reason, details, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *BlockRepository) Create(ctx context.Context, b *block.Block) error {
	_, err := r.db.Exec(ctx, insertBlockSQL,
		b.ID(),
		b.CarID(),
		pgconv.DateToPgtype(b.Dates().Start()),
		pgconv.DateToPgtype(b.Dates().End()),
		string(b.Reason()),
		b.Details(),
		pgconv.TimeToPgtype(b.CreatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to create date block", err)
	}
	return nil
}

const findBlockByIDSQL = `
SELECT id, car_id, start_date, end_date, reason, details, created_at
FROM date_blocks
WHERE id = $1`

func (r *BlockRepository) FindByID(ctx context.Context, id uuid.UUID) (*block.Block, error) {
	var (
		blockID   uuid.UUID
		carID     uuid.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
		reason    string
		details   string
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findBlockByIDSQL, id).Scan(
		&blockID, &carID, &startDate, &endDate, &reason, &details, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("date block not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find date block", err)
	}

	dates, err := booking.NewDateRange(pgconv.DateFromPgtype(startDate), pgconv.DateFromPgtype(endDate))
	if err != nil {
		return nil, infra.WrapRepoErr("stored date block has invalid dates", err)
	}

	return block.Reconstruct(blockID, carID, dates, block.Reason(reason), details, pgconv.TimeFromPgtype(createdAt)), nil
}

func (r *BlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM date_blocks WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete date block", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("date block not found", nil, infra.KindNotFound)
	}
	return nil
}
