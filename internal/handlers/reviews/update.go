package reviews

import (
	"fmt"

	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Update overwrites rating and comment of an existing Review.
// The rating is not range checked here.
func (h *Handler) Update(c *gin.Context) {
	var in struct {
		ReviewID   *int64 `form:"reviewId" binding:"required"`
		NewRating  *int   `form:"newRating" binding:"required"`
		NewComment string `form:"newComment"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	if err := h.store.UpdateReview(c.Request.Context(), *in.ReviewID, *in.NewRating, in.NewComment); err != nil {
		common.Fail(c, fmt.Errorf("review %d: %w", *in.ReviewID, err))
		return
	}
	common.OK(c, "updated")
}
