package vehicle

import (
	"strings"
	"time"

	"vehicle-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyPlate            = errs.Kinded("plate cannot be empty", errs.ErrValidation)
	ErrPlateTooLong          = errs.Kinded("plate is too long (max 16 characters)", errs.ErrValidation)
	ErrEmptyModel            = errs.Kinded("model cannot be empty", errs.ErrValidation)
	ErrInvalidYear           = errs.Kinded("year is out of range", errs.ErrValidation)
	ErrNegativeMileage       = errs.Kinded("mileage cannot be negative", errs.ErrValidation)
	ErrInvalidThreshold      = errs.Kinded("mileage threshold must be positive", errs.ErrValidation)
	ErrNegativeRate          = errs.Kinded("hourly rate cannot be negative", errs.ErrValidation)
	ErrMileageRegression     = errs.Kinded("mileage cannot decrease", errs.ErrValidation)
	ErrDurationOutOfBounds   = errs.Kinded("rental duration is outside the vehicle's rent hour bounds", errs.ErrValidation)
	ErrOverMileageThreshold  = errs.Kinded("vehicle has reached its mileage threshold", errs.ErrConflict)
	ErrVehicleDeleted        = errs.Kinded("vehicle is deleted", errs.ErrNotFound)
	ErrVehicleNotFound       = errs.Kinded("vehicle not found", errs.ErrNotFound)
	ErrDuplicatePlate        = errs.Kinded("vehicle plate already exists", errs.ErrConflict)
	ErrVehicleInUse          = errs.Kinded("vehicle has pending or active rentals", errs.ErrConflict)
	ErrTypeMismatch          = errs.Kinded("vehicle type does not match", errs.ErrValidation)
	ErrIneligibleForBookings = errs.Kinded("vehicle is not eligible for new rentals", errs.ErrConflict)
)

const (
	MaxPlateLength = 16
	minYear        = 1900
)

// Vehicle is a reservable unit of the fleet. Mileage only moves forward and
// only when a rental is completed.
type Vehicle struct {
	id               uuid.UUID
	plate            string
	model            string
	vehicleType      Type
	year             int
	mileage          float64
	mileageThreshold float64
	bounds           RentBounds
	hourlyRateCents  int64
	photoURL         *string
	deleted          bool
	createdAt        time.Time
	updatedAt        time.Time
}

type NewVehicleParams struct {
	Plate            string
	Model            string
	Type             Type
	Year             int
	Mileage          float64
	MileageThreshold float64
	MinRentHours     int
	MaxRentHours     int
	HourlyRateCents  int64
	PhotoURL         *string
}

func NewVehicle(p NewVehicleParams, now time.Time) (*Vehicle, error) {
	plate, err := normalizePlate(p.Plate)
	if err != nil {
		return nil, err
	}

	v := &Vehicle{
		id:        uuid.New(),
		plate:     plate,
		mileage:   p.Mileage,
		createdAt: now,
		updatedAt: now,
	}
	if p.Mileage < 0 {
		return nil, ErrNegativeMileage
	}

	// registration goes through the same rules as a full patch
	patch := Patch{
		Model:            &p.Model,
		Type:             &p.Type,
		Year:             &p.Year,
		MileageThreshold: &p.MileageThreshold,
		MinRentHours:     &p.MinRentHours,
		MaxRentHours:     &p.MaxRentHours,
		HourlyRateCents:  &p.HourlyRateCents,
		PhotoURL:         p.PhotoURL,
	}
	if err := v.apply(patch, now); err != nil {
		return nil, err
	}
	return v, nil
}

// IsEligible reports whether the vehicle may take new rentals at all.
func (v *Vehicle) IsEligible() bool {
	return !v.deleted && v.mileage < v.mileageThreshold
}

func (v *Vehicle) IsOverThreshold() bool {
	return v.mileage >= v.mileageThreshold
}

// CheckBookable validates a request for billableHours against this vehicle.
func (v *Vehicle) CheckBookable(billableHours int) error {
	if v.deleted {
		return ErrVehicleDeleted
	}
	if !v.bounds.Contains(billableHours) {
		return ErrDurationOutOfBounds
	}
	if v.IsOverThreshold() {
		return ErrOverMileageThreshold
	}
	return nil
}

func (v *Vehicle) AcceptsDuration(billableHours int) bool {
	return v.bounds.Contains(billableHours)
}

func (v *Vehicle) ApplyPatch(p Patch, now time.Time) error {
	if v.deleted {
		return ErrVehicleDeleted
	}
	if p.IsEmpty() {
		return nil
	}
	return v.apply(p, now)
}

// apply validates the merged result before touching the receiver so a
// rejected patch leaves the vehicle unchanged.
func (v *Vehicle) apply(p Patch, now time.Time) error {
	next := *v
	if p.Model != nil {
		model := strings.TrimSpace(*p.Model)
		if model == "" {
			return ErrEmptyModel
		}
		next.model = model
	}
	if p.Type != nil {
		if !p.Type.IsValid() {
			return ErrInvalidType
		}
		next.vehicleType = *p.Type
	}
	if p.Year != nil {
		if *p.Year < minYear || *p.Year > now.Year()+1 {
			return ErrInvalidYear
		}
		next.year = *p.Year
	}
	if p.MileageThreshold != nil {
		if *p.MileageThreshold <= 0 {
			return ErrInvalidThreshold
		}
		next.mileageThreshold = *p.MileageThreshold
	}
	if p.MinRentHours != nil || p.MaxRentHours != nil {
		bounds, err := NewRentBounds(
			coalesce(p.MinRentHours, v.bounds.Min()),
			coalesce(p.MaxRentHours, v.bounds.Max()),
		)
		if err != nil {
			return err
		}
		next.bounds = bounds
	}
	if p.HourlyRateCents != nil {
		if *p.HourlyRateCents < 0 {
			return ErrNegativeRate
		}
		next.hourlyRateCents = *p.HourlyRateCents
	}
	if p.PhotoURL != nil {
		url := strings.TrimSpace(*p.PhotoURL)
		if url == "" {
			next.photoURL = nil
		} else {
			next.photoURL = &url
		}
	}
	next.updatedAt = now
	*v = next
	return nil
}

// MarkDeleted soft-deletes the vehicle; callers must first make sure no
// blocking rental references it.
func (v *Vehicle) MarkDeleted(now time.Time) error {
	if v.deleted {
		return ErrVehicleDeleted
	}
	v.deleted = true
	v.updatedAt = now
	return nil
}

// RecordMileage is called on rental completion only.
func (v *Vehicle) RecordMileage(endMileage float64, now time.Time) error {
	if endMileage < v.mileage {
		return ErrMileageRegression
	}
	v.mileage = endMileage
	v.updatedAt = now
	return nil
}

func normalizePlate(plate string) (string, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return "", ErrEmptyPlate
	}
	if len(plate) > MaxPlateLength {
		return "", ErrPlateTooLong
	}
	return plate, nil
}

// NormalizePlate exposes the lookup form of a plate to callers that address vehicles by key.
func NormalizePlate(plate string) (string, error) {
	return normalizePlate(plate)
}

func (v *Vehicle) ID() uuid.UUID             { return v.id }
func (v *Vehicle) Plate() string             { return v.plate }
func (v *Vehicle) Model() string             { return v.model }
func (v *Vehicle) Type() Type                { return v.vehicleType }
func (v *Vehicle) Year() int                 { return v.year }
func (v *Vehicle) Mileage() float64          { return v.mileage }
func (v *Vehicle) MileageThreshold() float64 { return v.mileageThreshold }
func (v *Vehicle) Bounds() RentBounds        { return v.bounds }
func (v *Vehicle) HourlyRateCents() int64    { return v.hourlyRateCents }
func (v *Vehicle) PhotoURL() *string         { return v.photoURL }
func (v *Vehicle) IsDeleted() bool           { return v.deleted }
func (v *Vehicle) CreatedAt() time.Time      { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time      { return v.updatedAt }
