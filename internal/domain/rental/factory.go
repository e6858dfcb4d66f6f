package rental

import (
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateRental checks the vehicle-side preconditions and prices the request.
// Overlap with other rentals is the caller's job since it needs the ledger.
func (f *Factory) CreateRental(v *vehicle.Vehicle, userID uuid.UUID, slot TimeSlot) (*Rental, error) {
	if err := v.CheckBookable(slot.BillableHours()); err != nil {
		return nil, err
	}

	base, err := NewMoney(f.PriceCalculator.CalculatePriceCents(v, slot))
	if err != nil {
		return nil, err
	}

	return newRental(v.ID(), userID, slot, base, f.Clock.Now()), nil
}
