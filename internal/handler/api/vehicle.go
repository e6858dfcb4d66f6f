package api

import (
	"net/http"

	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/handler/httperr"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	cmds         commands.VehicleCommands
	availability queries.AvailabilityQueries
	reports      queries.ReportQueries
}

func NewVehicleHandler(cmds commands.VehicleCommands, availability queries.AvailabilityQueries, reports queries.ReportQueries) *VehicleHandler {
	return &VehicleHandler{cmds: cmds, availability: availability, reports: reports}
}

// @Summary Search available vehicles
// @Description List vehicles of a type that can be booked for the window
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param type query string true "Vehicle type (SEDAN, SUV, VAN, HATCHBACK, TRUCK)"
// @Param start query string true "Window start (RFC3339)"
// @Param end query string true "Window end (RFC3339)"
// @Success 200 {array} resdto.AvailableVehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/vehicles/available [get]
func (h *VehicleHandler) Search(c *gin.Context) {
	var q reqdto.SearchVehiclesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	views, err := h.availability.Search(c.Request.Context(), q.ToQuery())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailableVehicles(views))
}

// @Summary List vehicles
// @Description List the fleet, optionally including deleted vehicles
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param include_deleted query bool false "Include soft-deleted vehicles"
// @Success 200 {array} resdto.VehicleResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	var q reqdto.ListVehiclesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	views, err := h.reports.AllVehicles(c.Request.Context(), q.IncludeDeleted)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleViews(views))
}

// @Summary Register vehicle
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVehicleRequest true "Vehicle"
// @Success 201 {object} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/vehicles [post]
func (h *VehicleHandler) Register(c *gin.Context) {
	var req reqdto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.RegisterVehicle(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/admin/vehicles/"+view.Plate)
	c.JSON(http.StatusCreated, resdto.FromVehicleView(view))
}

// @Summary Update vehicle
// @Description Partially update a vehicle; omitted fields keep their value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plate path string true "Licence plate"
// @Param request body reqdto.UpdateVehicleRequest true "Fields to change"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/vehicles/{plate} [patch]
func (h *VehicleHandler) Update(c *gin.Context) {
	var req reqdto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.UpdateVehicle(c.Request.Context(), c.Param("plate"), patch)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary Delete vehicle
// @Description Soft-delete a vehicle that has no pending or active rentals
// @Tags admin
// @Security BearerAuth
// @Param plate path string true "Licence plate"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/vehicles/{plate} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.cmds.DeleteVehicle(c.Request.Context(), c.Param("plate")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
