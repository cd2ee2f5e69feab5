package reservations

import (
	"net/http"

	"github.com/Jeomhps/rentacar-graph-api/internal/db"
	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Create stores a Reservation made by the given User.
// The node and its MAKES edge come from one statement, so an unknown userId
// creates nothing and still answers 200.
func (h *Handler) Create(c *gin.Context) {
	var q struct {
		UserID *int64 `form:"userId" binding:"required"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	var in db.Reservation
	if err := c.ShouldBindJSON(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	if err := h.store.AddReservation(c.Request.Context(), *q.UserID, in); err != nil {
		common.Fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}
