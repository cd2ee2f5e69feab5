package users

import (
	"fmt"

	"github.com/Jeomhps/rentacar-graph-api/internal/db"
	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Update overwrites all four attributes of an existing User.
// Every field must be supplied; there is no partial update.
func (h *Handler) Update(c *gin.Context) {
	var in struct {
		UserID      *int64 `form:"userId" binding:"required"`
		NewUsername string `form:"newUsername" binding:"required"`
		NewEmail    string `form:"newEmail" binding:"required"`
		NewPassword string `form:"newPassword" binding:"required"`
		NewRole     string `form:"newRole" binding:"required"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	stored, err := h.passwords.Hash(in.NewPassword)
	if err != nil {
		common.Fail(c, err)
		return
	}
	u := db.User{Username: in.NewUsername, Email: in.NewEmail, Password: stored, Role: in.NewRole}
	if err := h.store.UpdateUser(c.Request.Context(), *in.UserID, u); err != nil {
		common.Fail(c, fmt.Errorf("user %d: %w", *in.UserID, err))
		return
	}
	common.OK(c, "updated")
}
