//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/handler/api"
	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/internal/usecase/shared"
	"vehicle-rental/tests/common/builder"
	"vehicle-rental/tests/common/httptest"
	"vehicle-rental/tests/common/testutil"
	commandsmock "vehicle-rental/tests/mock/commands"
	queriesmock "vehicle-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentalQueries
	userID       uuid.UUID
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewRentalHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(s.userID)
	s.router.POST("/api/rentals", auth, h.Create)
	s.router.GET("/api/rentals", auth, h.ListMine)
	s.router.GET("/api/rentals/:id", auth, h.Get)
	s.router.POST("/api/rentals/:id/cancel", auth, h.Cancel)
	s.router.POST("/api/admin/rentals/:id/review", auth, h.Review)
	s.router.POST("/api/admin/rentals/:id/issue", auth, h.Issue)
	s.router.POST("/api/admin/rentals/:id/complete", auth, h.Complete)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

type testCaseRental struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RentalHandlerTestSuite) TestCreate() {
	url := "/api/rentals"
	start := builder.FixedNow.Add(24 * time.Hour)
	reqBody := reqdto.CreateRentalRequest{VehicleID: uuid.New(), Start: start, End: start.Add(4 * time.Hour)}

	s.Run("success: returns 201 Created", func() {
		view := rentalView(s.userID)
		s.mockCommands.EXPECT().
			CreateRental(gomock.Any(), gomock.Cond(func(r commands.CreateRentalRequest) bool {
				return r.VehicleID == reqBody.VehicleID && r.Start.Equal(reqBody.Start) && r.End.Equal(reqBody.End)
			}), s.userID, "").
			Return(&commands.CreateRentalResult{Rental: view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "member")

		var body resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(int64(2000), body.TotalCents)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/rentals/" + view.ID.String()})
	})

	s.Run("success: replay returns 200 with marker header", func() {
		view := rentalView(s.userID)
		s.mockCommands.EXPECT().
			CreateRental(gomock.Any(), gomock.Any(), s.userID, "key-1").
			Return(&commands.CreateRentalResult{Rental: view, IsReplayed: true}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "member",
			map[string]string{middleware.IdempotencyKeyHeader: "key-1"})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 on invalid body", func() {
		cases := []testCaseRental{
			{name: "missing vehicle_id", mutate: testutil.Field("vehicle_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing start", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
			{name: "malformed end", mutate: testutil.Field("end", "tomorrow"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "member")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 400 on oversized idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "member",
			map[string]string{middleware.IdempotencyKeyHeader: strings.Repeat("k", 129)})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency key")
	})

	s.Run("error: domain errors map to status codes", func() {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{name: "window invalid", err: rental.ErrInvalidWindow, code: http.StatusBadRequest},
			{name: "duration out of bounds", err: vehicle.ErrDurationOutOfBounds, code: http.StatusBadRequest},
			{name: "vehicle not found", err: vehicle.ErrVehicleNotFound, code: http.StatusNotFound},
			{name: "overlap", err: rental.ErrOverlappingRental, code: http.StatusConflict},
			{name: "over threshold", err: vehicle.ErrOverMileageThreshold, code: http.StatusConflict},
			{name: "idempotency key reused", err: commands.ErrIdempotencyKeyReused, code: http.StatusConflict},
			{name: "storage busy", err: errs.Mark(errors.New("lock timeout"), errs.ErrStorageConflict), code: http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRental(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "member")
				s.Equal(tc.code, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestGet / TestListMine
// ================================================================================

func (s *RentalHandlerTestSuite) TestGet() {
	s.Run("success: owner reads rental", func() {
		view := rentalView(s.userID)
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), gomock.AssignableToTypeOf(shared.Actor{}), view.ID).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/"+view.ID.String(), nil, "member")

		var body resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 403 for someone else's rental", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).Return(nil, rental.ErrNotOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/"+id.String(), nil, "member")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/not-a-uuid", nil, "member")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rental id")
	})
}

func (s *RentalHandlerTestSuite) TestListMine() {
	views := []*queries.RentalView{rentalView(s.userID), rentalView(s.userID)}
	s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals", nil, "member")

	var body []resdto.RentalResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 2)
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *RentalHandlerTestSuite) TestCancel() {
	s.Run("success: member cancels with reason", func() {
		view := rentalView(s.userID)
		s.mockCommands.EXPECT().
			CancelRental(gomock.Any(), shared.Actor{UserID: s.userID, Role: "member"}, view.ID, "plans changed").
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rentals/"+view.ID.String()+"/cancel",
			reqdto.CancelRentalRequest{Reason: "plans changed"}, "member")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: body is optional", func() {
		view := rentalView(s.userID)
		s.mockCommands.EXPECT().CancelRental(gomock.Any(), gomock.Any(), view.ID, "").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rentals/"+view.ID.String()+"/cancel", nil, "member")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 when already terminal", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelRental(gomock.Any(), gomock.Any(), id, "").Return(nil, rental.ErrNotCancellable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rentals/"+id.String()+"/cancel", nil, "member")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 400 when reason is too long", func() {
		id := uuid.New()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rentals/"+id.String()+"/cancel",
			reqdto.CancelRentalRequest{Reason: strings.Repeat("r", 501)}, "member")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// Admin transitions
// ================================================================================

func (s *RentalHandlerTestSuite) TestReview() {
	id := uuid.New()

	s.Run("success: reject with reason", func() {
		s.mockCommands.EXPECT().ReviewRental(gomock.Any(), id, false, "no licence").Return(rentalView(s.userID), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/rentals/"+id.String()+"/review",
			map[string]any{"approve": false, "reason": "no licence"}, "admin")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when decision is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/rentals/"+id.String()+"/review",
			map[string]any{"reason": "x"}, "admin")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 422 when not pending", func() {
		s.mockCommands.EXPECT().ReviewRental(gomock.Any(), id, true, "").Return(nil, rental.ErrNotPendingApproval)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/rentals/"+id.String()+"/review",
			map[string]any{"approve": true}, "admin")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *RentalHandlerTestSuite) TestIssue() {
	id := uuid.New()

	s.Run("error: 422 before approval", func() {
		s.mockCommands.EXPECT().IssueRental(gomock.Any(), id).Return(nil, rental.ErrNotIssuable)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/rentals/"+id.String()+"/issue", nil, "admin")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("success: issued", func() {
		s.mockCommands.EXPECT().IssueRental(gomock.Any(), id).Return(rentalView(s.userID), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/rentals/"+id.String()+"/issue", nil, "admin")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *RentalHandlerTestSuite) TestComplete() {
	id := uuid.New()
	url := "/api/admin/rentals/" + id.String() + "/complete"
	valid := map[string]any{"end_mileage": 12500.5, "surcharge_cents": 300, "payment_method": "CARD"}

	s.Run("success: forwards return details", func() {
		want := commands.CompleteRentalRequest{EndMileage: 12500.5, SurchargeCents: 300, PaymentMethod: "CARD"}
		s.mockCommands.EXPECT().CompleteRental(gomock.Any(), id, want).Return(rentalView(s.userID), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, valid, "admin")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	cases := []testCaseRental{
		{name: "missing end_mileage", mutate: testutil.Field("end_mileage", nil), expectCode: http.StatusBadRequest},
		{name: "negative surcharge", mutate: testutil.Field("surcharge_cents", -1), expectCode: http.StatusBadRequest},
		{name: "missing payment method", mutate: testutil.Field("payment_method", nil), expectCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), valid, tc.mutate), "admin")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: mileage regression is a 400", func() {
		s.mockCommands.EXPECT().CompleteRental(gomock.Any(), id, gomock.Any()).Return(nil, vehicle.ErrMileageRegression)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, valid, "admin")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
