package users

import (
	"net/http"

	"github.com/Jeomhps/rentacar-graph-api/internal/db"
	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Add creates a User node with the four attributes as given.
// No format or strength checks; the only rule is that the email is unused.
func (h *Handler) Add(c *gin.Context) {
	var in db.User
	if err := c.ShouldBindJSON(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	if err := h.add(c, in); err != nil {
		common.Fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Register checks the email once more and then takes the Add path.
// The check is not atomic with the insert; two concurrent registrations
// with the same email can both succeed.
func (h *Handler) Register(c *gin.Context) {
	var in db.User
	if err := c.ShouldBindJSON(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	taken, err := h.store.EmailTaken(c.Request.Context(), in.Email)
	if err != nil {
		common.Fail(c, err)
		return
	}
	if taken {
		common.Fail(c, db.ErrEmailTaken)
		return
	}
	if err := h.add(c, in); err != nil {
		common.Fail(c, err)
		return
	}
	common.OK(c, "registered")
}

func (h *Handler) add(c *gin.Context, u db.User) error {
	stored, err := h.passwords.Hash(u.Password)
	if err != nil {
		return err
	}
	u.Password = stored
	return h.store.AddUser(c.Request.Context(), u)
}
