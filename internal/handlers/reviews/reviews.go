package reviews

import (
	"context"

	"github.com/Jeomhps/rentacar-graph-api/internal/db"
)

// Package reviews provides Review HTTP handlers.
//
// - create.go: Handler.Create, Handler.Give
// - list.go:   Handler.List
// - update.go: Handler.Update
// - delete.go: Handler.Delete

// Store is the slice of the graph store the Review endpoints use.
type Store interface {
	AddReview(ctx context.Context, r db.Review) (db.Review, error)
	GiveReview(ctx context.Context, userID, reviewID int64) error
	AllReviews(ctx context.Context) ([]db.Entry, error)
	RemoveReview(ctx context.Context, id int64) error
	UpdateReview(ctx context.Context, id int64, rating int, comment string) error
}

// Handler wires review endpoints to the graph store.
type Handler struct{ store Store }

// NewHandler returns a new reviews handler.
func NewHandler(s Store) *Handler { return &Handler{store: s} }
