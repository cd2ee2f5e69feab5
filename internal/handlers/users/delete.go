package users

import (
	"fmt"

	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Delete removes a User and every MAKES/GIVES edge attached to it.
// The linked Reservation and Review nodes stay.
func (h *Handler) Delete(c *gin.Context) {
	var in struct {
		UserID *int64 `form:"userId" binding:"required"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	if err := h.store.RemoveUser(c.Request.Context(), *in.UserID); err != nil {
		common.Fail(c, fmt.Errorf("user %d: %w", *in.UserID, err))
		return
	}
	common.OK(c, "deleted")
}
