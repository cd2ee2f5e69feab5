package reservations

import (
	"net/http"

	"github.com/Jeomhps/rentacar-graph-api/internal/db"
	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// List returns the raw node view of every Reservation.
func (h *Handler) List(c *gin.Context) {
	nodes, err := h.store.AllReservations(c.Request.Context())
	if err != nil {
		common.Fail(c, err)
		return
	}
	if nodes == nil {
		nodes = []db.Node{}
	}
	c.JSON(http.StatusOK, nodes)
}
