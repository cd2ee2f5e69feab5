package reviews

import (
	"net/http"

	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

func (h *Handler) List(c *gin.Context) {
	reviews, err := h.store.AllReviews(c.Request.Context())
	if err != nil {
		common.Fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, gin.H{"reviewId": r.ID, "attributes": r.Attributes})
	}
	c.JSON(http.StatusOK, out)
}
