package response

import (
	"time"

	"vehicle-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalResponse struct {
	ID              uuid.UUID  `json:"id"`
	VehicleID       uuid.UUID  `json:"vehicle_id"`
	UserID          uuid.UUID  `json:"user_id"`
	StartAt         time.Time  `json:"start_at"`
	EndAt           time.Time  `json:"end_at"`
	ApprovalStatus  string     `json:"approval_status"`
	BookingStatus   string     `json:"booking_status"`
	BaseCents       int64      `json:"base_cents"`
	SurchargeCents  int64      `json:"surcharge_cents"`
	TotalCents      int64      `json:"total_cents"`
	PaymentMethod   *string    `json:"payment_method,omitempty"`
	EndingMileage   *float64   `json:"ending_mileage,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy     *string    `json:"cancelled_by,omitempty"`
	CancelReason    *string    `json:"cancel_reason,omitempty"`
	IssuedAt        *time.Time `json:"issued_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromRentalView(v *queries.RentalView) *RentalResponse {
	return copyInto[RentalResponse](v)
}

func FromRentalViews(vs []*queries.RentalView) []*RentalResponse {
	return copyAll[RentalResponse](vs)
}
