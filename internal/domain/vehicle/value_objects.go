package vehicle

import (
	"strings"

	"vehicle-rental/internal/pkg/errs"
)

var (
	ErrInvalidType       = errs.Kinded("unknown vehicle type", errs.ErrValidation)
	ErrInvalidRentBounds = errs.Kinded("rent hour bounds must satisfy 1 <= min <= max", errs.ErrValidation)
)

type Type string

const (
	TypeSedan     Type = "SEDAN"
	TypeSUV       Type = "SUV"
	TypeVan       Type = "VAN"
	TypeHatchback Type = "HATCHBACK"
	TypeTruck     Type = "TRUCK"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSedan, TypeSUV, TypeVan, TypeHatchback, TypeTruck:
		return true
	default:
		return false
	}
}

// ParseType accepts any letter case, the way operators type it.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// RentBounds is the inclusive range of billable hours a vehicle can be booked for.
type RentBounds struct {
	minHours int
	maxHours int
}

func NewRentBounds(minHours, maxHours int) (RentBounds, error) {
	if minHours < 1 || maxHours < minHours {
		return RentBounds{}, ErrInvalidRentBounds
	}
	return RentBounds{minHours: minHours, maxHours: maxHours}, nil
}

func (b RentBounds) Min() int { return b.minHours }
func (b RentBounds) Max() int { return b.maxHours }

func (b RentBounds) Contains(hours int) bool {
	return hours >= b.minHours && hours <= b.maxHours
}
