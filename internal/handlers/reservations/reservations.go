package reservations

import (
	"context"
	"time"

	"github.com/Jeomhps/rentacar-graph-api/internal/db"
)

// Package reservations provides Reservation HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are implemented in dedicated files:
// - list.go:   Handler.List
// - create.go: Handler.Create
// - update.go: Handler.Update
// - delete.go: Handler.Delete
//
// Unlike Users and Reviews, nothing here checks that the Reservation exists
// first: update and delete on an unknown identifier succeed without effect.

// Store is the slice of the graph store the Reservation endpoints use.
type Store interface {
	AddReservation(ctx context.Context, userID int64, r db.Reservation) error
	AllReservations(ctx context.Context) ([]db.Node, error)
	RemoveReservation(ctx context.Context, id int64) error
	UpdateReservation(ctx context.Context, id int64, duration int, date time.Time) error
}

// Handler wires reservation endpoints to the graph store.
type Handler struct{ store Store }

// NewHandler returns a new reservations handler.
func NewHandler(s Store) *Handler { return &Handler{store: s} }
