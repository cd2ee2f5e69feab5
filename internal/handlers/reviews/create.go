package reviews

import (
	"net/http"

	"github.com/Jeomhps/rentacar-graph-api/internal/db"
	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Create stores a standalone Review and echoes it back with its generated id.
// The author is attached later through Give.
func (h *Handler) Create(c *gin.Context) {
	var in db.Review
	if err := c.ShouldBindJSON(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	out, err := h.store.AddReview(c.Request.Context(), in)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Give attaches a User to a Review as its author.
// Unknown identifiers on either side leave the graph unchanged.
func (h *Handler) Give(c *gin.Context) {
	var in struct {
		UserID   *int64 `form:"userId" binding:"required"`
		ReviewID *int64 `form:"reviewId" binding:"required"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	if err := h.store.GiveReview(c.Request.Context(), *in.UserID, *in.ReviewID); err != nil {
		common.Fail(c, err)
		return
	}
	common.OK(c, "review given")
}
