// Package server assembles the gin engine: middleware, resource handlers
// and the route table.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/reservations"
	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/reviews"
	"github.com/Jeomhps/rentacar-graph-api/internal/handlers/users"
	"github.com/Jeomhps/rentacar-graph-api/internal/middleware"
	"github.com/Jeomhps/rentacar-graph-api/internal/password"
	"github.com/gin-gonic/gin"
)

// Store is everything the routes need from the graph. Both *db.DB and
// *db.MemoryGraph satisfy it.
type Store interface {
	users.Store
	reservations.Store
	reviews.Store
	Ping(ctx context.Context) error
}

const healthTimeout = 3 * time.Second

// NewRouter returns an engine with every route registered.
func NewRouter(s Store, mode password.Mode) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	userH := users.NewHandler(s, mode)
	resH := reservations.NewHandler(s)
	revH := reviews.NewHandler(s)

	r.GET("/healthz", health(s))

	user := r.Group("/user")
	{
		user.POST("/AddUser", userH.Add)
		user.POST("/RegisterUser", userH.Register)
		user.POST("/LoginUser", userH.Login)
		user.GET("/AllUsers", userH.List)
		user.PUT("/UpdateUser", userH.Update)
		user.DELETE("", userH.Delete)
	}

	reservation := r.Group("/reservation")
	{
		reservation.POST("", resH.Create)
		reservation.GET("/AllReservations", resH.List)
		reservation.PUT("/UpdateReservation", resH.Update)
		reservation.DELETE("", resH.Delete)
	}

	review := r.Group("/review")
	{
		review.POST("/AddReview", revH.Create)
		review.POST("/GiveReview", revH.Give)
		review.GET("/AllReviews", revH.List)
		review.PUT("/UpdateReview", revH.Update)
		review.DELETE("", revH.Delete)
	}
	return r
}

func health(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := s.Ping(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
