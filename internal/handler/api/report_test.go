//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"vehicle-rental/internal/handler/api"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/tests/common/httptest"
	queriesmock "vehicle-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockReports *queriesmock.MockReportQueries
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReports = queriesmock.NewMockReportQueries(s.mockCtrl)
	h := api.NewReportHandler(s.mockReports)

	auth := fakeAuth(uuid.New())
	s.router.GET("/api/admin/reports/no-shows", auth, h.NoShows)
	s.router.GET("/api/admin/reports/over-threshold", auth, h.OverThreshold)
	s.router.GET("/api/admin/reports/cancellations", auth, h.Cancellations)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) TestNoShows() {
	s.mockReports.EXPECT().NoShows(gomock.Any()).Return([]*queries.RentalView{rentalView(uuid.New())}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reports/no-shows", nil, "admin")

	var body []resdto.RentalResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 1)
}

func (s *ReportHandlerTestSuite) TestOverThreshold() {
	s.mockReports.EXPECT().OverThresholdVehicles(gomock.Any()).Return([]*queries.VehicleView{}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reports/over-threshold", nil, "admin")

	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	s.JSONEq("[]", rec.Body.String())
}

func (s *ReportHandlerTestSuite) TestCancellations() {
	s.Run("success", func() {
		s.mockReports.EXPECT().Cancellations(gomock.Any()).Return([]*queries.RentalView{rentalView(uuid.New())}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reports/cancellations", nil, "admin")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: storage failures hide details", func() {
		s.mockReports.EXPECT().Cancellations(gomock.Any()).Return(nil, errors.New("connection reset"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reports/cancellations", nil, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}
