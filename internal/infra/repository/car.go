package repository

import (
	"context"

	"fleetbook/internal/domain/fleet"
	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CarRepository struct {
	db db.DBTX
}

func NewCarRepository(dbtx db.DBTX) *CarRepository {
	return &CarRepository{db: dbtx}
}

const findCarByIDSQL = `
SELECT id, car_number, name, registration, current_region, current_location,
       status, preferred_regions, is_static, created_at, updated_at
FROM cars
WHERE id = $1`

func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Car, error) {
	var (
		car       fleet.Car
		status    string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findCarByIDSQL, id).Scan(
		&car.ID, &car.CarNumber, &car.Name, &car.Registration,
		&car.CurrentRegion, &car.CurrentLocation, &status,
		&car.PreferredRegions, &car.IsStatic, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car", err)
	}

	car.Status = fleet.Status(status)
	car.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	car.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &car, nil
}

func (r *CarRepository) SetStatus(ctx context.Context, id uuid.UUID, status fleet.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE cars SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set car status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateCarLocationSQL = `
UPDATE cars SET
    current_region = COALESCE($2, current_region),
    current_location = COALESCE($3, current_location),
    updated_at = now()
WHERE id = $1`

func (r *CarRepository) UpdateLocation(ctx context.Context, id uuid.UUID, region, location *string) error {
	tag, err := r.db.Exec(ctx, updateCarLocationSQL,
		id,
		pgconv.StringPtrToPgtype(region),
		pgconv.StringPtrToPgtype(location),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update car location", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}
