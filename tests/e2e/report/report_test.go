//go:build e2e

package report_test

import (
	"net/http"
	"testing"

	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/tests/common/builder"
	"vehicle-rental/tests/common/dbtest"
	"vehicle-rental/tests/common/httptest"
	"vehicle-rental/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type reportSuite struct {
	e2e.SharedSuite
}

func TestReportSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reportSuite))
}

func (s *reportSuite) TestOverThreshold() {
	admin := builder.Admin()

	s.Run("worn vehicles are reported and never offered", func() {
		worn := builder.NewVehicleBuilder().With(func(b *builder.VehicleBuilder) {
			b.Plate = "WORN-001"
			b.Type = "VAN"
			b.Mileage = 5000
			b.MileageThreshold = 4000
		}).MustBuildDomain()
		dbtest.InsertVehicle(s.T(), s.DB, worn)
		s.RegisterVehicle(admin, "FRESH-001", "VAN")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, e2e.AdminReportsPrefix+"/over-threshold", nil, s.Token(admin))
		var report []resdto.VehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &report)
		s.Require().Len(report, 1)
		s.Equal(worn.ID(), report[0].ID)
	})

	s.Run("reports are admin only", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, e2e.AdminReportsPrefix+"/no-shows", nil, s.Token(builder.Member()))
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("no rentals means an empty no-show report", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, e2e.AdminReportsPrefix+"/no-shows", nil, s.Token(admin))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq("[]", rec.Body.String())
	})
}
