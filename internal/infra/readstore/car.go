package readstore

import (
	"context"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(dbtx db.DBTX) *CarReadStore {
	return &CarReadStore{db: dbtx}
}

const carViewColumns = `
id, car_number, name, registration, current_region, current_location,
status, preferred_regions, is_static`

func (r *CarReadStore) FindAll(ctx context.Context, region *string) ([]*queries.CarView, error) {
	sql := `SELECT ` + carViewColumns + ` FROM cars`
	args := []any{}
	if region != nil {
		sql += ` WHERE current_region = $1 OR $1 = ANY(preferred_regions)`
		args = append(args, *region)
	}
	sql += ` ORDER BY car_number`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	cars := make([]*queries.CarView, 0)
	for rows.Next() {
		var v queries.CarView
		if err := rows.Scan(
			&v.ID, &v.CarNumber, &v.Name, &v.Registration,
			&v.CurrentRegion, &v.CurrentLocation, &v.Status,
			&v.PreferredRegions, &v.IsStatic,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", err)
		}
		cars = append(cars, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read car list", err)
	}
	return cars, nil
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	var v queries.CarView
	err := r.db.QueryRow(ctx, `SELECT `+carViewColumns+` FROM cars WHERE id = $1`, id).Scan(
		&v.ID, &v.CarNumber, &v.Name, &v.Registration,
		&v.CurrentRegion, &v.CurrentLocation, &v.Status,
		&v.PreferredRegions, &v.IsStatic,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car view", err)
	}
	return &v, nil
}
