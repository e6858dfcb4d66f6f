package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const vehicleColumns = `id, plate, model, vehicle_type, year, mileage, mileage_threshold,
	min_rent_hours, max_rent_hours, hourly_rate_cents, photo_url, deleted, created_at, updated_at`

func scanVehicle(row pgx.Row) (Vehicles, error) {
	var i Vehicles
	err := row.Scan(
		&i.ID,
		&i.Plate,
		&i.Model,
		&i.VehicleType,
		&i.Year,
		&i.Mileage,
		&i.MileageThreshold,
		&i.MinRentHours,
		&i.MaxRentHours,
		&i.HourlyRateCents,
		&i.PhotoUrl,
		&i.Deleted,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectVehicles(rows pgx.Rows, err error) ([]Vehicles, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Vehicles
	for rows.Next() {
		i, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const createVehicle = `
INSERT INTO vehicles (` + vehicleColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func (q *Queries) CreateVehicle(ctx context.Context, db DBTX, arg Vehicles) error {
	_, err := db.Exec(ctx, createVehicle,
		arg.ID,
		arg.Plate,
		arg.Model,
		arg.VehicleType,
		arg.Year,
		arg.Mileage,
		arg.MileageThreshold,
		arg.MinRentHours,
		arg.MaxRentHours,
		arg.HourlyRateCents,
		arg.PhotoUrl,
		arg.Deleted,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getVehicleByID = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

func (q *Queries) GetVehicleByID(ctx context.Context, db DBTX, id uuid.UUID) (Vehicles, error) {
	return scanVehicle(db.QueryRow(ctx, getVehicleByID, id))
}

const getVehicleByIDForUpdate = getVehicleByID + ` FOR UPDATE`

func (q *Queries) GetVehicleByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Vehicles, error) {
	return scanVehicle(db.QueryRow(ctx, getVehicleByIDForUpdate, id))
}

const getVehicleByPlateForUpdate = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE plate = $1 FOR UPDATE`

func (q *Queries) GetVehicleByPlateForUpdate(ctx context.Context, db DBTX, plate string) (Vehicles, error) {
	return scanVehicle(db.QueryRow(ctx, getVehicleByPlateForUpdate, plate))
}

const updateVehicle = `
UPDATE vehicles SET
	model = $2,
	vehicle_type = $3,
	year = $4,
	mileage = $5,
	mileage_threshold = $6,
	min_rent_hours = $7,
	max_rent_hours = $8,
	hourly_rate_cents = $9,
	photo_url = $10,
	deleted = $11,
	updated_at = $12
WHERE id = $1`

func (q *Queries) UpdateVehicle(ctx context.Context, db DBTX, arg Vehicles) (int64, error) {
	tag, err := db.Exec(ctx, updateVehicle,
		arg.ID,
		arg.Model,
		arg.VehicleType,
		arg.Year,
		arg.Mileage,
		arg.MileageThreshold,
		arg.MinRentHours,
		arg.MaxRentHours,
		arg.HourlyRateCents,
		arg.PhotoUrl,
		arg.Deleted,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listEligibleVehicles = `
SELECT ` + vehicleColumns + `
FROM vehicles
WHERE vehicle_type = $1 AND NOT deleted AND mileage < mileage_threshold
ORDER BY id`

func (q *Queries) ListEligibleVehicles(ctx context.Context, db DBTX, vehicleType string) ([]Vehicles, error) {
	return collectVehicles(db.Query(ctx, listEligibleVehicles, vehicleType))
}

const listOverThresholdVehicles = `
SELECT ` + vehicleColumns + `
FROM vehicles
WHERE mileage >= mileage_threshold
ORDER BY id`

func (q *Queries) ListOverThresholdVehicles(ctx context.Context, db DBTX) ([]Vehicles, error) {
	return collectVehicles(db.Query(ctx, listOverThresholdVehicles))
}

const listVehicles = `
SELECT ` + vehicleColumns + `
FROM vehicles
WHERE $1::boolean OR NOT deleted
ORDER BY id`

func (q *Queries) ListVehicles(ctx context.Context, db DBTX, includeDeleted bool) ([]Vehicles, error) {
	return collectVehicles(db.Query(ctx, listVehicles, includeDeleted))
}
