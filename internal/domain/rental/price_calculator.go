package rental

import "vehicle-rental/internal/domain/vehicle"

type PriceCalculator interface {
	CalculatePriceCents(v *vehicle.Vehicle, slot TimeSlot) int64
}

// HourlyPriceCalculator charges the vehicle's hourly rate per started hour.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (pc *HourlyPriceCalculator) CalculatePriceCents(v *vehicle.Vehicle, slot TimeSlot) int64 {
	return int64(slot.BillableHours()) * v.HourlyRateCents()
}
