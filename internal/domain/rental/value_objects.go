package rental

import (
	"strings"
	"time"

	"vehicle-rental/internal/pkg/errs"
)

// HandoverBuffer is the turnaround kept free on each side of a rental.
const HandoverBuffer = 6 * time.Hour

var (
	ErrInvalidWindow        = errs.Kinded("rental start must be before its end", errs.ErrValidation)
	ErrStartInPast          = errs.Kinded("rental start cannot be in the past", errs.ErrValidation)
	ErrNegativeAmount       = errs.Kinded("amount cannot be negative", errs.ErrValidation)
	ErrInvalidPaymentMethod = errs.Kinded("payment method must be CARD or CASH", errs.ErrValidation)
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end, now time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidWindow
	}
	if start.Before(now) {
		return TimeSlot{}, ErrStartInPast
	}
	return TimeSlot{start: start.UTC(), end: end.UTC()}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// BillableHours rounds any partial hour up.
func (ts TimeSlot) BillableHours() int {
	d := ts.Duration()
	hours := d / time.Hour
	if d%time.Hour != 0 {
		hours++
	}
	return int(hours)
}

// Buffered widens the slot by HandoverBuffer on both sides.
func (ts TimeSlot) Buffered() TimeSlot {
	return TimeSlot{start: ts.start.Add(-HandoverBuffer), end: ts.end.Add(HandoverBuffer)}
}

// ConflictsWith reports whether other falls inside this slot's handover buffer.
func (ts TimeSlot) ConflictsWith(other TimeSlot) bool {
	b := ts.Buffered()
	return other.start.Before(b.end) && other.end.After(b.start)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "CARD"
	PaymentCash PaymentMethod = "CASH"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	return p == PaymentCard || p == PaymentCash
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	p := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return p, nil
}
