package request

import (
	"time"

	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/usecase/queries"
)

type CreateVehicleRequest struct {
	Plate            string  `json:"plate" binding:"required,max=16"`
	Model            string  `json:"model" binding:"required"`
	Type             string  `json:"type" binding:"required"`
	Year             int     `json:"year" binding:"required"`
	Mileage          float64 `json:"mileage" binding:"gte=0"`
	MileageThreshold float64 `json:"mileage_threshold" binding:"required,gt=0"`
	MinRentHours     int     `json:"min_rent_hours" binding:"required,gte=1"`
	MaxRentHours     int     `json:"max_rent_hours" binding:"required,gte=1"`
	HourlyRateCents  int64   `json:"hourly_rate_cents" binding:"gte=0"`
	PhotoURL         *string `json:"photo_url,omitempty" binding:"omitempty,url"`
}

func (r CreateVehicleRequest) ToParams() (vehicle.NewVehicleParams, error) {
	vt, err := vehicle.ParseType(r.Type)
	if err != nil {
		return vehicle.NewVehicleParams{}, err
	}
	return vehicle.NewVehicleParams{
		Plate:            r.Plate,
		Model:            r.Model,
		Type:             vt,
		Year:             r.Year,
		Mileage:          r.Mileage,
		MileageThreshold: r.MileageThreshold,
		MinRentHours:     r.MinRentHours,
		MaxRentHours:     r.MaxRentHours,
		HourlyRateCents:  r.HourlyRateCents,
		PhotoURL:         r.PhotoURL,
	}, nil
}

// UpdateVehicleRequest: omitted fields keep their value.
type UpdateVehicleRequest struct {
	Model            *string  `json:"model,omitempty" binding:"omitempty,min=1"`
	Type             *string  `json:"type,omitempty"`
	Year             *int     `json:"year,omitempty"`
	MileageThreshold *float64 `json:"mileage_threshold,omitempty" binding:"omitempty,gt=0"`
	MinRentHours     *int     `json:"min_rent_hours,omitempty" binding:"omitempty,gte=1"`
	MaxRentHours     *int     `json:"max_rent_hours,omitempty" binding:"omitempty,gte=1"`
	HourlyRateCents  *int64   `json:"hourly_rate_cents,omitempty" binding:"omitempty,gte=0"`
	PhotoURL         *string  `json:"photo_url,omitempty"`
}

func (r UpdateVehicleRequest) ToPatch() (vehicle.Patch, error) {
	p := vehicle.Patch{
		Model:            r.Model,
		Year:             r.Year,
		MileageThreshold: r.MileageThreshold,
		MinRentHours:     r.MinRentHours,
		MaxRentHours:     r.MaxRentHours,
		HourlyRateCents:  r.HourlyRateCents,
		PhotoURL:         r.PhotoURL,
	}
	if r.Type != nil {
		vt, err := vehicle.ParseType(*r.Type)
		if err != nil {
			return vehicle.Patch{}, err
		}
		p.Type = &vt
	}
	return p, nil
}

type SearchVehiclesQuery struct {
	Type  string    `form:"type" binding:"required"`
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (q SearchVehiclesQuery) ToQuery() queries.SearchRequest {
	return queries.SearchRequest{Type: q.Type, Start: q.Start, End: q.End}
}

type ListVehiclesQuery struct {
	IncludeDeleted bool `form:"include_deleted"`
}
