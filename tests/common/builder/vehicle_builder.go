//go:build unit || e2e

package builder

import (
	"time"

	"vehicle-rental/internal/domain/vehicle"
)

// FixedNow is the reference instant every builder defaults to.
var FixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type VehicleBuilder struct {
	Plate            string
	Model            string
	Type             string
	Year             int
	Mileage          float64
	MileageThreshold float64
	MinRentHours     int
	MaxRentHours     int
	HourlyRateCents  int64
	PhotoURL         *string
	Now              time.Time
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		Plate:            "ABC-1234",
		Model:            "Corolla",
		Type:             "SEDAN",
		Year:             2022,
		Mileage:          12000,
		MileageThreshold: 100000,
		MinRentHours:     2,
		MaxRentHours:     72,
		HourlyRateCents:  500,
		Now:              FixedNow,
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

func (b *VehicleBuilder) Params() vehicle.NewVehicleParams {
	return vehicle.NewVehicleParams{
		Plate:            b.Plate,
		Model:            b.Model,
		Type:             vehicle.Type(b.Type),
		Year:             b.Year,
		Mileage:          b.Mileage,
		MileageThreshold: b.MileageThreshold,
		MinRentHours:     b.MinRentHours,
		MaxRentHours:     b.MaxRentHours,
		HourlyRateCents:  b.HourlyRateCents,
		PhotoURL:         b.PhotoURL,
	}
}

// Build methods
func (b *VehicleBuilder) BuildDomain() (*vehicle.Vehicle, error) {
	return vehicle.NewVehicle(b.Params(), b.Now)
}

func (b *VehicleBuilder) MustBuildDomain() *vehicle.Vehicle {
	v, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return v
}
