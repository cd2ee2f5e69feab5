package reservations

import (
	"time"

	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Update overwrites duration and date of a Reservation.
// newReservationDate is an RFC3339 timestamp.
func (h *Handler) Update(c *gin.Context) {
	var in struct {
		ReservationID      *int64 `form:"reservationId" binding:"required"`
		NewDuration        *int   `form:"newDuration" binding:"required"`
		NewReservationDate string `form:"newReservationDate" binding:"required"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	date, err := time.Parse(time.RFC3339, in.NewReservationDate)
	if err != nil {
		common.InvalidRequest(c, err)
		return
	}
	if err := h.store.UpdateReservation(c.Request.Context(), *in.ReservationID, *in.NewDuration, date); err != nil {
		common.Fail(c, err)
		return
	}
	common.OK(c, "updated")
}
