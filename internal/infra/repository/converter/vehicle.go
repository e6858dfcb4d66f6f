package converter

import (
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra/sqlc"
	"vehicle-rental/internal/pkg/pgconv"
)

func VehicleToInfra(v *vehicle.Vehicle) sqlc.Vehicles {
	s := v.Snapshot()
	return sqlc.Vehicles{
		ID:               s.ID,
		Plate:            s.Plate,
		Model:            s.Model,
		VehicleType:      s.Type.String(),
		Year:             int32(s.Year),
		Mileage:          s.Mileage,
		MileageThreshold: s.MileageThreshold,
		MinRentHours:     int32(s.MinRentHours),
		MaxRentHours:     int32(s.MaxRentHours),
		HourlyRateCents:  s.HourlyRateCents,
		PhotoUrl:         pgconv.StringPtrToPgtype(s.PhotoURL),
		Deleted:          s.Deleted,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func VehicleToDomain(row sqlc.Vehicles) *vehicle.Vehicle {
	return vehicle.Reconstruct(vehicle.Snapshot{
		ID:               row.ID,
		Plate:            row.Plate,
		Model:            row.Model,
		Type:             vehicle.Type(row.VehicleType),
		Year:             int(row.Year),
		Mileage:          row.Mileage,
		MileageThreshold: row.MileageThreshold,
		MinRentHours:     int(row.MinRentHours),
		MaxRentHours:     int(row.MaxRentHours),
		HourlyRateCents:  row.HourlyRateCents,
		PhotoURL:         pgconv.StringPtrFromPgtype(row.PhotoUrl),
		Deleted:          row.Deleted,
		CreatedAt:        row.CreatedAt.UTC(),
		UpdatedAt:        row.UpdatedAt.UTC(),
	})
}

func VehiclesToDomain(rows []sqlc.Vehicles) []*vehicle.Vehicle {
	out := make([]*vehicle.Vehicle, 0, len(rows))
	for _, row := range rows {
		out = append(out, VehicleToDomain(row))
	}
	return out
}
