package rental

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the flat persisted form of a Rental.
type Snapshot struct {
	ID              uuid.UUID
	VehicleID       uuid.UUID
	UserID          uuid.UUID
	StartAt         time.Time
	EndAt           time.Time
	ApprovalStatus  ApprovalStatus
	BookingStatus   BookingStatus
	BaseCents       int64
	SurchargeCents  int64
	TotalCents      int64
	PaymentMethod   *PaymentMethod
	EndingMileage   *float64
	RejectionReason *string
	CancelledAt     *time.Time
	CancelledBy     *string
	CancelReason    *string
	IssuedAt        *time.Time
	CompletedAt     *time.Time
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r *Rental) Snapshot() Snapshot {
	return Snapshot{
		ID:              r.id,
		VehicleID:       r.vehicleID,
		UserID:          r.userID,
		StartAt:         r.slot.start,
		EndAt:           r.slot.end,
		ApprovalStatus:  r.approval,
		BookingStatus:   r.booking,
		BaseCents:       r.base.cents,
		SurchargeCents:  r.surcharge.cents,
		TotalCents:      r.total.cents,
		PaymentMethod:   r.paymentMethod,
		EndingMileage:   r.endingMileage,
		RejectionReason: r.rejectionReason,
		CancelledAt:     r.cancelledAt,
		CancelledBy:     r.cancelledBy,
		CancelReason:    r.cancelReason,
		IssuedAt:        r.issuedAt,
		CompletedAt:     r.completedAt,
		PaidAt:          r.paidAt,
		CreatedAt:       r.createdAt,
		UpdatedAt:       r.updatedAt,
	}
}

// Reconstruct rebuilds a stored rental without re-validating it; a start in
// the past is normal for anything already persisted.
func Reconstruct(s Snapshot) *Rental {
	return &Rental{
		id:              s.ID,
		vehicleID:       s.VehicleID,
		userID:          s.UserID,
		slot:            TimeSlot{start: s.StartAt.UTC(), end: s.EndAt.UTC()},
		approval:        s.ApprovalStatus,
		booking:         s.BookingStatus,
		base:            Money{cents: s.BaseCents},
		surcharge:       Money{cents: s.SurchargeCents},
		total:           Money{cents: s.TotalCents},
		paymentMethod:   s.PaymentMethod,
		endingMileage:   s.EndingMileage,
		rejectionReason: s.RejectionReason,
		cancelledAt:     s.CancelledAt,
		cancelledBy:     s.CancelledBy,
		cancelReason:    s.CancelReason,
		issuedAt:        s.IssuedAt,
		completedAt:     s.CompletedAt,
		paidAt:          s.PaidAt,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

// WindowOf returns the slot of a stored rental without the "not in the past" rule.
func WindowOf(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidWindow
	}
	return TimeSlot{start: start.UTC(), end: end.UTC()}, nil
}
