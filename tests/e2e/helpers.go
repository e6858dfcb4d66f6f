//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"time"

	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/usecase/shared"
	"vehicle-rental/tests/common/httptest"

	"github.com/google/uuid"
)

const (
	VehiclesURL        = "/api/admin/vehicles"
	AvailableURL       = "/api/vehicles/available"
	RentalsURL         = "/api/rentals"
	AdminRentalsURL    = "/api/admin/rentals"
	AdminReportsPrefix = "/api/admin/reports"
)

// NextWindow returns a whole-hour window starting daysAhead days from now.
func NextWindow(daysAhead int, hours int) (time.Time, time.Time) {
	start := time.Now().UTC().Truncate(time.Hour).Add(time.Duration(daysAhead) * 24 * time.Hour)
	return start, start.Add(time.Duration(hours) * time.Hour)
}

func (s *SharedSuite) Token(actor shared.Actor) string {
	return s.JWT.GenerateToken(s.T(), actor)
}

// RegisterVehicle creates a vehicle through the admin API.
func (s *SharedSuite) RegisterVehicle(admin shared.Actor, plate, vehicleType string) resdto.VehicleResponse {
	req := reqdto.CreateVehicleRequest{
		Plate:            plate,
		Model:            "Test " + vehicleType,
		Type:             vehicleType,
		Year:             2023,
		Mileage:          1000,
		MileageThreshold: 100000,
		MinRentHours:     1,
		MaxRentHours:     72,
		HourlyRateCents:  500,
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, VehiclesURL, req, s.Token(admin))

	var body resdto.VehicleResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return body
}

// BookRental books vehicleID for member and returns the created rental.
func (s *SharedSuite) BookRental(member shared.Actor, vehicleID uuid.UUID, start, end time.Time) resdto.RentalResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, RentalsURL,
		reqdto.CreateRentalRequest{VehicleID: vehicleID, Start: start, End: end}, s.Token(member))

	var body resdto.RentalResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return body
}

func AdminRentalURL(id uuid.UUID, action string) string {
	return fmt.Sprintf("%s/%s/%s", AdminRentalsURL, id, action)
}
