package users

import (
	"net/http"

	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// List returns every User, unordered and unpaginated.
func (h *Handler) List(c *gin.Context) {
	users, err := h.store.AllUsers(c.Request.Context())
	if err != nil {
		common.Fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"userId":     u.ID,
			"attributes": u.Attributes,
		})
	}
	c.JSON(http.StatusOK, out)
}
