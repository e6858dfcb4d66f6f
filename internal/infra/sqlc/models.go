package sqlc

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Vehicles struct {
	ID               uuid.UUID
	Plate            string
	Model            string
	VehicleType      string
	Year             int32
	Mileage          float64
	MileageThreshold float64
	MinRentHours     int32
	MaxRentHours     int32
	HourlyRateCents  int64
	PhotoUrl         pgtype.Text
	Deleted          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Rentals struct {
	ID              uuid.UUID
	VehicleID       uuid.UUID
	UserID          uuid.UUID
	StartAt         time.Time
	EndAt           time.Time
	ApprovalStatus  string
	BookingStatus   string
	BaseCents       int64
	SurchargeCents  int64
	TotalCents      int64
	PaymentMethod   pgtype.Text
	EndingMileage   pgtype.Float8
	RejectionReason pgtype.Text
	CancelledAt     pgtype.Timestamptz
	CancelledBy     pgtype.Text
	CancelReason    pgtype.Text
	IssuedAt        pgtype.Timestamptz
	CompletedAt     pgtype.Timestamptz
	PaidAt          pgtype.Timestamptz
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
