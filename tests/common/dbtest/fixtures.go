//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type seedCar struct {
	number   int
	name     string
	reg      string
	region   string
	location string
}

var fleetSeed = []seedCar{
	{1, "Roadshow One", "KA-01-AB-0001", "South", "Bangalore"},
	{2, "Roadshow Two", "KA-01-AB-0002", "South", "Chennai"},
	{3, "Metro Hauler", "MH-02-CD-0003", "West", "Mumbai"},
	{4, "North Star", "DL-03-EF-0004", "North", "Delhi"},
}

// SeedFleet inserts the baseline cars every test scenario books against.
func SeedFleet(pool *pgxpool.Pool) error {
	ctx := context.Background()
	for _, c := range fleetSeed {
		_, err := pool.Exec(ctx, `
			INSERT INTO cars (car_number, name, registration, current_region, current_location, preferred_regions)
			VALUES ($1, $2, $3, $4, $5, ARRAY[$4])
			ON CONFLICT (car_number) DO NOTHING`,
			c.number, c.name, c.reg, c.region, c.location)
		if err != nil {
			return err
		}
	}
	return nil
}

// ResetDB truncates mutable state and restores car rows to their
// seeded condition. Cars themselves are kept so ids stay stable
// within a suite.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	if _, err := pool.Exec(ctx, "TRUNCATE bookings, date_blocks, notification_log"); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "UPDATE cars SET status = 'Available', is_static = FALSE"); err != nil {
		return err
	}
	return SeedFleet(pool)
}

// CarIDByNumber resolves a seeded car's id.
func CarIDByNumber(t *testing.T, pool *pgxpool.Pool, number int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(), "SELECT id FROM cars WHERE car_number = $1", number).Scan(&id)
	require.NoError(t, err, "seeded car missing")
	return id
}

// CarStatus reads the current derived status of a car.
func CarStatus(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) string {
	t.Helper()

	var status string
	err := pool.QueryRow(context.Background(), "SELECT status FROM cars WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}
