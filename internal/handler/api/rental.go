package api

import (
	"errors"
	"net/http"

	reqdto "vehicle-rental/internal/handler/dto/request"
	resdto "vehicle-rental/internal/handler/dto/response"
	"vehicle-rental/internal/handler/httperr"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxIdempotencyKeyLength = 128

var (
	errUnauthenticated    = errors.New("no authenticated actor")
	errIdempotencyKeySize = errors.New("idempotency key too long")
)

type RentalHandler struct {
	cmds commands.RentalCommands
	q    queries.RentalQueries
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{cmds: cmds, q: q}
}

// @Summary Create rental
// @Description Book a vehicle; repeat calls with the same Idempotency-Key replay the first result
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.CreateRentalRequest true "Rental request"
// @Success 201 {object} resdto.RentalResponse
// @Success 200 {object} resdto.RentalResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/rentals [post]
func (h *RentalHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	key := c.GetHeader(middleware.IdempotencyKeyHeader)
	if len(key) > maxIdempotencyKeyLength {
		httperr.AbortWithError(c, http.StatusBadRequest, errIdempotencyKeySize, "Idempotency key too long", nil)
		return
	}
	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateRental(c.Request.Context(), req.ToCommand(), actor.UserID, key)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Location", "/api/rentals/"+result.Rental.ID.String())
	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(middleware.ReplayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromRentalView(result.Rental))
}

// @Summary List my rentals
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RentalResponse
// @Failure 401 {object} httperr.Response
// @Router /api/rentals [get]
func (h *RentalHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary Get rental
// @Description Members may only read their own rentals
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rentals/{id} [get]
func (h *RentalHandler) Get(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Cancel rental
// @Description Members cancel their own rentals; admins may cancel any
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.CancelRentalRequest false "Reason"
// @Success 200 {object} resdto.RentalResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rentals/{id}/cancel [post]
func (h *RentalHandler) Cancel(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}
	var req reqdto.CancelRentalRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	view, err := h.cmds.CancelRental(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Review rental
// @Description Approve or reject a pending rental
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.ReviewRentalRequest true "Decision"
// @Success 200 {object} resdto.RentalResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/rentals/{id}/review [post]
func (h *RentalHandler) Review(c *gin.Context) {
	_, id, ok := h.actorAndID(c)
	if !ok {
		return
	}
	var req reqdto.ReviewRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.ReviewRental(c.Request.Context(), id, *req.Approve, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Issue rental
// @Description Hand the vehicle over for an approved rental
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/rentals/{id}/issue [post]
func (h *RentalHandler) Issue(c *gin.Context) {
	_, id, ok := h.actorAndID(c)
	if !ok {
		return
	}
	view, err := h.cmds.IssueRental(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Complete rental
// @Description Record the return, surcharge and payment of an active rental
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.CompleteRentalRequest true "Return details"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/rentals/{id}/complete [post]
func (h *RentalHandler) Complete(c *gin.Context) {
	_, id, ok := h.actorAndID(c)
	if !ok {
		return
	}
	var req reqdto.CompleteRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CompleteRental(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

func (h *RentalHandler) actorAndID(c *gin.Context) (shared.Actor, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return shared.Actor{}, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental id", nil)
		return shared.Actor{}, uuid.Nil, false
	}
	return actor, id, true
}
