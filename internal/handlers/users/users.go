package users

import (
	"context"

	"github.com/Jeomhps/rentacar-graph-api/internal/db"
	"github.com/Jeomhps/rentacar-graph-api/internal/password"
)

// Package users provides User HTTP handlers.
//
// This file defines the handler type and constructor only.
// The HTTP methods are split into dedicated, focused files:
// - create.go: Handler.Add, Handler.Register
// - login.go:  Handler.Login
// - list.go:   Handler.List
// - update.go: Handler.Update
// - delete.go: Handler.Delete

// Store is the slice of the graph store the User endpoints use.
type Store interface {
	EmailTaken(ctx context.Context, email string) (bool, error)
	AddUser(ctx context.Context, u db.User) error
	MatchCredentials(ctx context.Context, username, password string) (int64, error)
	CredentialsByUsername(ctx context.Context, username string) ([]db.Credential, error)
	RemoveUser(ctx context.Context, id int64) error
	UpdateUser(ctx context.Context, id int64, u db.User) error
	AllUsers(ctx context.Context) ([]db.Entry, error)
}

// Handler wires User endpoints to the graph store.
type Handler struct {
	store     Store
	passwords password.Mode
}

// NewHandler returns a new users handler.
func NewHandler(s Store, mode password.Mode) *Handler { return &Handler{store: s, passwords: mode} }
