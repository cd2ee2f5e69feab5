package common

import (
	"errors"
	"net/http"

	"github.com/Jeomhps/rentacar-graph-api/internal/db"
	"github.com/gin-gonic/gin"
)

// Package common provides small, shared helpers used across handlers.
// Every failure leaves the handler through one of these so the error body
// keeps the same {"error", "message"} shape.

// InvalidRequest answers 400 for parameters or bodies that failed to bind.
func InvalidRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
}

// Fail maps a store error onto a status code. Anything unrecognised is a
// 400 carrying the raw driver message.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": err.Error()})
	case errors.Is(err, db.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "conflict", "message": err.Error()})
	case errors.Is(err, db.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "invalid credentials"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
	}
}

// OK answers 200 with a short confirmation.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
