package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const rentalColumns = `id, vehicle_id, user_id, start_at, end_at, approval_status, booking_status,
	base_cents, surcharge_cents, total_cents, payment_method, ending_mileage, rejection_reason,
	cancelled_at, cancelled_by, cancel_reason, issued_at, completed_at, paid_at, created_at, updated_at`

const blockingPredicate = `approval_status IN ('PENDING', 'APPROVED') AND booking_status IN ('REQUESTED', 'ACTIVE')`

func scanRental(row pgx.Row) (Rentals, error) {
	var i Rentals
	err := row.Scan(
		&i.ID,
		&i.VehicleID,
		&i.UserID,
		&i.StartAt,
		&i.EndAt,
		&i.ApprovalStatus,
		&i.BookingStatus,
		&i.BaseCents,
		&i.SurchargeCents,
		&i.TotalCents,
		&i.PaymentMethod,
		&i.EndingMileage,
		&i.RejectionReason,
		&i.CancelledAt,
		&i.CancelledBy,
		&i.CancelReason,
		&i.IssuedAt,
		&i.CompletedAt,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectRentals(rows pgx.Rows, err error) ([]Rentals, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Rentals
	for rows.Next() {
		i, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const createRental = `
INSERT INTO rentals (` + rentalColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

func (q *Queries) CreateRental(ctx context.Context, db DBTX, arg Rentals) error {
	_, err := db.Exec(ctx, createRental,
		arg.ID,
		arg.VehicleID,
		arg.UserID,
		arg.StartAt,
		arg.EndAt,
		arg.ApprovalStatus,
		arg.BookingStatus,
		arg.BaseCents,
		arg.SurchargeCents,
		arg.TotalCents,
		arg.PaymentMethod,
		arg.EndingMileage,
		arg.RejectionReason,
		arg.CancelledAt,
		arg.CancelledBy,
		arg.CancelReason,
		arg.IssuedAt,
		arg.CompletedAt,
		arg.PaidAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getRentalByID = `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`

func (q *Queries) GetRentalByID(ctx context.Context, db DBTX, id uuid.UUID) (Rentals, error) {
	return scanRental(db.QueryRow(ctx, getRentalByID, id))
}

const getRentalByIDForUpdate = getRentalByID + ` FOR UPDATE`

func (q *Queries) GetRentalByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Rentals, error) {
	return scanRental(db.QueryRow(ctx, getRentalByIDForUpdate, id))
}

// start, end, base and the owner never change after creation.
const updateRental = `
UPDATE rentals SET
	approval_status = $2,
	booking_status = $3,
	surcharge_cents = $4,
	total_cents = $5,
	payment_method = $6,
	ending_mileage = $7,
	rejection_reason = $8,
	cancelled_at = $9,
	cancelled_by = $10,
	cancel_reason = $11,
	issued_at = $12,
	completed_at = $13,
	paid_at = $14,
	updated_at = $15
WHERE id = $1`

func (q *Queries) UpdateRental(ctx context.Context, db DBTX, arg Rentals) (int64, error) {
	tag, err := db.Exec(ctx, updateRental,
		arg.ID,
		arg.ApprovalStatus,
		arg.BookingStatus,
		arg.SurchargeCents,
		arg.TotalCents,
		arg.PaymentMethod,
		arg.EndingMileage,
		arg.RejectionReason,
		arg.CancelledAt,
		arg.CancelledBy,
		arg.CancelReason,
		arg.IssuedAt,
		arg.CompletedAt,
		arg.PaidAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ConflictingVehicleIDsParams struct {
	VehicleIDs []string
	// buffered window bounds
	From time.Time
	To   time.Time
}

const conflictingVehicleIDs = `
SELECT DISTINCT vehicle_id
FROM rentals
WHERE vehicle_id = ANY($1::uuid[])
  AND ` + blockingPredicate + `
  AND start_at < $3
  AND end_at > $2`

func (q *Queries) ConflictingVehicleIDs(ctx context.Context, db DBTX, arg ConflictingVehicleIDsParams) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, conflictingVehicleIDs, arg.VehicleIDs, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	return items, rows.Err()
}

const hasBlockingRental = `
SELECT EXISTS (
	SELECT 1 FROM rentals WHERE vehicle_id = $1 AND ` + blockingPredicate + `
)`

func (q *Queries) HasBlockingRental(ctx context.Context, db DBTX, vehicleID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, hasBlockingRental, vehicleID).Scan(&exists)
	return exists, err
}

const listNoShowRentals = `
SELECT ` + rentalColumns + `
FROM rentals
WHERE approval_status = 'APPROVED' AND booking_status = 'REQUESTED' AND start_at < $1
ORDER BY start_at, id`

func (q *Queries) ListNoShowRentals(ctx context.Context, db DBTX, now time.Time) ([]Rentals, error) {
	return collectRentals(db.Query(ctx, listNoShowRentals, now))
}

const listRentalsByBookingStatus = `
SELECT ` + rentalColumns + `
FROM rentals
WHERE booking_status = $1
ORDER BY start_at, id`

func (q *Queries) ListRentalsByBookingStatus(ctx context.Context, db DBTX, status string) ([]Rentals, error) {
	return collectRentals(db.Query(ctx, listRentalsByBookingStatus, status))
}

const listRentalsByUserID = `
SELECT ` + rentalColumns + `
FROM rentals
WHERE user_id = $1
ORDER BY start_at, id`

func (q *Queries) ListRentalsByUserID(ctx context.Context, db DBTX, userID uuid.UUID) ([]Rentals, error) {
	return collectRentals(db.Query(ctx, listRentalsByUserID, userID))
}
