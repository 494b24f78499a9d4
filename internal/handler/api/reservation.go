package api

import (
	"net/http"

	reqdto "ticketboss/internal/handler/dto/request"
	resdto "ticketboss/internal/handler/dto/response"
	"ticketboss/internal/handler/httperr"
	"ticketboss/internal/pkg/config"
	"ticketboss/internal/pkg/errs"
	"ticketboss/internal/usecase/commands"
	"ticketboss/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
	seed config.SeedConfig
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, seed config.SeedConfig) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, seed: seed}
}

// @Summary Create reservation
// @Description Reserve seats for an event on behalf of a partner
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params := commands.CreateReservationParams{
		EventID:   req.GetEventID(h.seed.EventID),
		PartnerID: req.PartnerID,
		Seats:     req.Seats,
	}

	snap, err := h.cmds.CreateReservation(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		case errors.Is(err, errs.ErrInsufficientAvailability):
			httperr.AbortWithError(c, http.StatusConflict, err, "Not enough seats left", nil)
		case errors.Is(err, errs.ErrInvalidSeatCount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid seat count", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Header("Location", "/api/reservations/"+snap.ID.String())
	c.JSON(http.StatusCreated, resdto.FromReservationSnapshot(snap))
}

// @Summary Cancel reservation
// @Description Cancel a confirmed reservation and return its seats to the pool
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	if _, err := h.cmds.CancelReservation(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, errs.ErrReservationAlreadyCancelled):
			// 元APIと同じく404で返すが、失敗種別は区別して伝える
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation already cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get reservation
// @Description Get a reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
