package reservations

import (
	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Delete removes a Reservation with its MAKES edge.
func (h *Handler) Delete(c *gin.Context) {
	var in struct {
		ReservationID *int64 `form:"reservationId" binding:"required"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	if err := h.store.RemoveReservation(c.Request.Context(), *in.ReservationID); err != nil {
		common.Fail(c, err)
		return
	}
	common.OK(c, "deleted")
}
