package queries

import (
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/domain/vehicle"

	"github.com/google/uuid"
)

// VehicleView represents read-optimized vehicle data
type VehicleView struct {
	ID               uuid.UUID `json:"id"`
	Plate            string    `json:"plate"`
	Model            string    `json:"model"`
	Type             string    `json:"type"`
	Year             int       `json:"year"`
	Mileage          float64   `json:"mileage"`
	MileageThreshold float64   `json:"mileage_threshold"`
	MinRentHours     int       `json:"min_rent_hours"`
	MaxRentHours     int       `json:"max_rent_hours"`
	HourlyRateCents  int64     `json:"hourly_rate_cents"`
	PhotoURL         *string   `json:"photo_url,omitempty"`
	Deleted          bool      `json:"deleted"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RentalView represents read-optimized rental data
type RentalView struct {
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

func ToVehicleView(v *vehicle.Vehicle) *VehicleView {
	s := v.Snapshot()
	return &VehicleView{
		ID:               s.ID,
		Plate:            s.Plate,
		Model:            s.Model,
		Type:             s.Type.String(),
		Year:             s.Year,
		Mileage:          s.Mileage,
		MileageThreshold: s.MileageThreshold,
		MinRentHours:     s.MinRentHours,
		MaxRentHours:     s.MaxRentHours,
		HourlyRateCents:  s.HourlyRateCents,
		PhotoURL:         s.PhotoURL,
		Deleted:          s.Deleted,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func ToRentalView(r *rental.Rental) *RentalView {
	s := r.Snapshot()
	view := &RentalView{
		ID:              s.ID,
		VehicleID:       s.VehicleID,
		UserID:          s.UserID,
		StartAt:         s.StartAt,
		EndAt:           s.EndAt,
		ApprovalStatus:  s.ApprovalStatus.String(),
		BookingStatus:   s.BookingStatus.String(),
		BaseCents:       s.BaseCents,
		SurchargeCents:  s.SurchargeCents,
		TotalCents:      s.TotalCents,
		EndingMileage:   s.EndingMileage,
		RejectionReason: s.RejectionReason,
		CancelledAt:     s.CancelledAt,
		CancelledBy:     s.CancelledBy,
		CancelReason:    s.CancelReason,
		IssuedAt:        s.IssuedAt,
		CompletedAt:     s.CompletedAt,
		PaidAt:          s.PaidAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if s.PaymentMethod != nil {
		method := s.PaymentMethod.String()
		view.PaymentMethod = &method
	}
	return view
}

func toVehicleViews(vs []*vehicle.Vehicle) []*VehicleView {
	views := make([]*VehicleView, 0, len(vs))
	for _, v := range vs {
		views = append(views, ToVehicleView(v))
	}
	return views
}

func toRentalViews(rs []*rental.Rental) []*RentalView {
	views := make([]*RentalView, 0, len(rs))
	for _, r := range rs {
		views = append(views, ToRentalView(r))
	}
	return views
}
