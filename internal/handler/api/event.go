package api

import (
	"net/http"

	resdto "ticketboss/internal/handler/dto/response"
	"ticketboss/internal/handler/httperr"
	"ticketboss/internal/pkg/errs"
	"ticketboss/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	q queries.EventQueries
}

func NewEventHandler(q queries.EventQueries) *EventHandler {
	return &EventHandler{q: q}
}

// @Summary Event summary
// @Description Aggregated availability and confirmed seat total for one event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventSummaryResponse
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetSummary(c *gin.Context) {
	eventID := c.Param("id")

	view, err := h.q.GetSummary(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, errs.ErrEventNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventSummaryView(view))
}
