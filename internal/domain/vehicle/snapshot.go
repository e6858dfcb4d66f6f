package vehicle

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is the flat persisted form of a Vehicle, shared by every storage driver.
type Snapshot struct {
	ID               uuid.UUID
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
	Deleted          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (v *Vehicle) Snapshot() Snapshot {
	return Snapshot{
		ID:               v.id,
		Plate:            v.plate,
		Model:            v.model,
		Type:             v.vehicleType,
		Year:             v.year,
		Mileage:          v.mileage,
		MileageThreshold: v.mileageThreshold,
		MinRentHours:     v.bounds.Min(),
		MaxRentHours:     v.bounds.Max(),
		HourlyRateCents:  v.hourlyRateCents,
		PhotoURL:         v.photoURL,
		Deleted:          v.deleted,
		CreatedAt:        v.createdAt,
		UpdatedAt:        v.updatedAt,
	}
}

// Reconstruct trusts the stored data; invariants were enforced when it was written.
func Reconstruct(s Snapshot) *Vehicle {
	return &Vehicle{
		id:               s.ID,
		plate:            s.Plate,
		model:            s.Model,
		vehicleType:      s.Type,
		year:             s.Year,
		mileage:          s.Mileage,
		mileageThreshold: s.MileageThreshold,
		bounds:           RentBounds{minHours: s.MinRentHours, maxHours: s.MaxRentHours},
		hourlyRateCents:  s.HourlyRateCents,
		photoURL:         s.PhotoURL,
		deleted:          s.Deleted,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
	}
}
