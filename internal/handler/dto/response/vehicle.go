package response

import (
	"time"

	"vehicle-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleResponse struct {
	ID               uuid.UUID `json:"id"`
	Plate            string    `json:"plate"`
	Model            string    `json:"model"`
	Type             string    `json:"type"`
	Year             int       `json:"year"`
	Mileage          float64   `json:"mileage"`
	MileageThreshold float64   `json:"mileage_threshold"`
	MinRentHours     int       `json:"min_rent_hours"`
	MaxRentHours     int       `json:"max_rent_hours"`
	HourlyRateCents  int64     `json:"hourly_rate_cents"`
	PhotoURL         *string   `json:"photo_url,omitempty"`
	Deleted          bool      `json:"deleted"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AvailableVehicleResponse is what members see when searching.
type AvailableVehicleResponse struct {
	ID              uuid.UUID `json:"id"`
	Plate           string    `json:"plate"`
	Model           string    `json:"model"`
	Type            string    `json:"type"`
	Year            int       `json:"year"`
	MinRentHours    int       `json:"min_rent_hours"`
	MaxRentHours    int       `json:"max_rent_hours"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	PhotoURL        *string   `json:"photo_url,omitempty"`
}

func FromVehicleView(v *queries.VehicleView) *VehicleResponse {
	return copyInto[VehicleResponse](v)
}

func FromVehicleViews(vs []*queries.VehicleView) []*VehicleResponse {
	return copyAll[VehicleResponse](vs)
}

func FromAvailableVehicles(vs []*queries.VehicleView) []*AvailableVehicleResponse {
	return copyAll[AvailableVehicleResponse](vs)
}
