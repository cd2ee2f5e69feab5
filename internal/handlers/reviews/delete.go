package reviews

import (
	"fmt"

	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Delete removes a Review and its GIVES edge.
func (h *Handler) Delete(c *gin.Context) {
	var in struct {
		ReviewID *int64 `form:"reviewId" binding:"required"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	if err := h.store.RemoveReview(c.Request.Context(), *in.ReviewID); err != nil {
		common.Fail(c, fmt.Errorf("review %d: %w", *in.ReviewID, err))
		return
	}
	common.OK(c, "deleted")
}
