//go:build unit || e2e

package builder

import (
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/clock"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	Vehicle *vehicle.Vehicle
	UserID  uuid.UUID
	Start   time.Time
	End     time.Time
	Now     time.Time
}

// NewRentalBuilder books a default vehicle for four hours starting a day after FixedNow.
func NewRentalBuilder() *RentalBuilder {
	start := FixedNow.Add(24 * time.Hour)
	return &RentalBuilder{
		Vehicle: NewVehicleBuilder().MustBuildDomain(),
		UserID:  uuid.New(),
		Start:   start,
		End:     start.Add(4 * time.Hour),
		Now:     FixedNow,
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RentalBuilder) BuildDomain() (*rental.Rental, error) {
	slot, err := rental.NewTimeSlot(b.Start, b.End, b.Now)
	if err != nil {
		return nil, err
	}
	f := rental.NewFactory(clock.NewMockClock(b.Now), rental.NewHourlyPriceCalculator())
	return f.CreateRental(b.Vehicle, b.UserID, slot)
}

func (b *RentalBuilder) MustBuildDomain() *rental.Rental {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

// MustBuildActive returns an approved and issued rental.
func (b *RentalBuilder) MustBuildActive() *rental.Rental {
	r := b.MustBuildDomain()
	if err := r.Review(true, "", b.Now); err != nil {
		panic(err)
	}
	if err := r.Issue(b.Now); err != nil {
		panic(err)
	}
	return r
}
