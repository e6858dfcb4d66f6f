package rental

import (
	"strings"
	"time"

	"vehicle-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRentalNotFound     = errs.Kinded("rental not found", errs.ErrNotFound)
	ErrOverlappingRental  = errs.Kinded("vehicle is already booked for an overlapping window", errs.ErrConflict)
	ErrNotPendingApproval = errs.Kinded("rental is not pending approval", errs.ErrInvalidTransition)
	ErrNotIssuable        = errs.Kinded("rental must be approved and requested to be issued", errs.ErrInvalidTransition)
	ErrNotActive          = errs.Kinded("rental must be active to be completed", errs.ErrInvalidTransition)
	ErrNotCancellable     = errs.Kinded("rental can no longer be cancelled", errs.ErrInvalidTransition)
	ErrNotOwner           = errs.Kinded("rental belongs to another user", errs.ErrForbidden)
	ErrReasonTooLong      = errs.Kinded("reason is too long (max 500 characters)", errs.ErrValidation)
)

const MaxReasonLength = 500

// Rental is a reservation of one vehicle by one user. Approval and booking
// progress on separate axes; see status.go for the legal moves.
type Rental struct {
	id        uuid.UUID
	vehicleID uuid.UUID
	userID    uuid.UUID
	slot      TimeSlot

	approval ApprovalStatus
	booking  BookingStatus

	base      Money
	surcharge Money
	total     Money

	paymentMethod   *PaymentMethod
	endingMileage   *float64
	rejectionReason *string

	cancelledAt  *time.Time
	cancelledBy  *string
	cancelReason *string

	issuedAt    *time.Time
	completedAt *time.Time
	paidAt      *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func newRental(vehicleID, userID uuid.UUID, slot TimeSlot, base Money, now time.Time) *Rental {
	return &Rental{
		id:        uuid.New(),
		vehicleID: vehicleID,
		userID:    userID,
		slot:      slot,
		approval:  ApprovalPending,
		booking:   BookingRequested,
		base:      base,
		total:     base,
		createdAt: now,
		updatedAt: now,
	}
}

// Review records the administrator's decision on a pending rental. A
// non-empty reason is kept for either decision.
func (r *Rental) Review(approve bool, reason string, now time.Time) error {
	next := ApprovalRejected
	if approve {
		next = ApprovalApproved
	}
	if !r.approval.CanTransitionTo(next) {
		return ErrNotPendingApproval
	}
	reason, err := normalizeReason(reason)
	if err != nil {
		return err
	}

	r.approval = next
	if reason != "" {
		r.rejectionReason = &reason
	}
	r.updatedAt = now
	return nil
}

// Issue hands the vehicle over to the renter.
func (r *Rental) Issue(now time.Time) error {
	if r.approval != ApprovalApproved || !r.booking.CanTransitionTo(BookingActive) {
		return ErrNotIssuable
	}
	r.booking = BookingActive
	r.issuedAt = &now
	r.updatedAt = now
	return nil
}

// Complete closes an active rental. The total is recomputed here and nowhere else.
func (r *Rental) Complete(endMileage float64, surcharge Money, method PaymentMethod, now time.Time) error {
	if !r.booking.CanTransitionTo(BookingCompleted) {
		return ErrNotActive
	}
	if !method.IsValid() {
		return ErrInvalidPaymentMethod
	}

	r.booking = BookingCompleted
	r.surcharge = surcharge
	r.total = r.base.Add(surcharge)
	r.paymentMethod = &method
	r.endingMileage = &endMileage
	r.completedAt = &now
	r.paidAt = &now
	r.updatedAt = now
	return nil
}

// Cancel is allowed from REQUESTED or ACTIVE. actor is recorded as given.
func (r *Rental) Cancel(actor, reason string, now time.Time) error {
	if !r.booking.CanTransitionTo(BookingCancelled) {
		return ErrNotCancellable
	}
	reason, err := normalizeReason(reason)
	if err != nil {
		return err
	}

	r.booking = BookingCancelled
	r.cancelledAt = &now
	r.cancelledBy = &actor
	if reason != "" {
		r.cancelReason = &reason
	}
	r.updatedAt = now
	return nil
}

func (r *Rental) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// IsBlocking reports whether the rental still holds its vehicle's calendar.
func (r *Rental) IsBlocking() bool {
	return IsBlocking(r.approval, r.booking)
}

// IsNoShow is an approved rental that was never issued although its start has passed.
func (r *Rental) IsNoShow(now time.Time) bool {
	return r.approval == ApprovalApproved && r.booking == BookingRequested && r.slot.Start().Before(now)
}

func normalizeReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) > MaxReasonLength {
		return "", ErrReasonTooLong
	}
	return reason, nil
}

func (r *Rental) ID() uuid.UUID                  { return r.id }
func (r *Rental) VehicleID() uuid.UUID           { return r.vehicleID }
func (r *Rental) UserID() uuid.UUID              { return r.userID }
func (r *Rental) Slot() TimeSlot                 { return r.slot }
func (r *Rental) ApprovalStatus() ApprovalStatus { return r.approval }
func (r *Rental) BookingStatus() BookingStatus   { return r.booking }
func (r *Rental) Base() Money                    { return r.base }
func (r *Rental) Surcharge() Money               { return r.surcharge }
func (r *Rental) Total() Money                   { return r.total }
func (r *Rental) PaymentMethod() *PaymentMethod  { return r.paymentMethod }
func (r *Rental) EndingMileage() *float64        { return r.endingMileage }
func (r *Rental) RejectionReason() *string       { return r.rejectionReason }
func (r *Rental) CancelledAt() *time.Time        { return r.cancelledAt }
func (r *Rental) CancelledBy() *string           { return r.cancelledBy }
func (r *Rental) CancelReason() *string          { return r.cancelReason }
func (r *Rental) IssuedAt() *time.Time           { return r.issuedAt }
func (r *Rental) CompletedAt() *time.Time        { return r.completedAt }
func (r *Rental) PaidAt() *time.Time             { return r.paidAt }
func (r *Rental) CreatedAt() time.Time           { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time           { return r.updatedAt }
