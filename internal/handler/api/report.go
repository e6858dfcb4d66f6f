package api

import (
	"net/http"

	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/handler/httperr"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary No-show rentals
// @Description Approved rentals that were never issued and whose start has passed
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RentalResponse
// @Router /api/admin/reports/no-shows [get]
func (h *ReportHandler) NoShows(c *gin.Context) {
	views, err := h.q.NoShows(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary Vehicles over mileage threshold
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VehicleResponse
// @Router /api/admin/reports/over-threshold [get]
func (h *ReportHandler) OverThreshold(c *gin.Context) {
	views, err := h.q.OverThresholdVehicles(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleViews(views))
}

// @Summary Cancelled rentals
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RentalResponse
// @Router /api/admin/reports/cancellations [get]
func (h *ReportHandler) Cancellations(c *gin.Context) {
	views, err := h.q.Cancellations(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}
