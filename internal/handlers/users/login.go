package users

import (
	"context"
	"net/http"

	"github.com/Jeomhps/rentacar-graph-api/internal/db"
	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/Jeomhps/rentacar-graph-api/internal/password"
	"github.com/gin-gonic/gin"
)

// Login looks up a User by username and password and returns its identifier.
// No token or session is issued.
func (h *Handler) Login(c *gin.Context) {
	var in struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		common.InvalidRequest(c, err)
		return
	}
	id, err := h.authenticate(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "userId": id})
}

// authenticate uses an exact-match query for plaintext storage; hashed
// passwords cannot be matched in the query, so candidates are compared here.
func (h *Handler) authenticate(ctx context.Context, username, plain string) (int64, error) {
	if h.passwords != password.Bcrypt {
		return h.store.MatchCredentials(ctx, username, plain)
	}
	creds, err := h.store.CredentialsByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	for _, cr := range creds {
		if h.passwords.Matches(cr.Password, plain) {
			return cr.UserID, nil
		}
	}
	return 0, db.ErrInvalidCredentials
}
