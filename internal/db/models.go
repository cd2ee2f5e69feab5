package db

import "time"

// Node labels and relationship types used in the graph.
const (
	LabelUser        = "User"
	LabelReservation = "Reservation"
	LabelReview      = "Review"

	RelMakes = "MAKES"
	RelGives = "GIVES"
)

// Declared attributes per label, in the order they are exposed.
var (
	userAttributes   = []string{"username", "email", "password", "role"}
	reviewAttributes = []string{"id", "rating", "comment"}
)

// User is the request model for a User node.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Reservation is the request model for a Reservation node.
type Reservation struct {
	ReservationDate time.Time `json:"reservationDate"`
	Duration        int       `json:"duration"`
}

// Review is the request model for a Review node.
// ID is always replaced by a server-generated value on creation.
type Review struct {
	ID      string `json:"id"`
	Rating  int    `json:"rating" binding:"min=1,max=5"`
	Comment string `json:"comment"`
}

// Credential is a stored username/password pair with its node identifier.
type Credential struct {
	UserID   int64
	Password string
}

// Entry is a node's declared attributes with the store identifier carried alongside.
type Entry struct {
	ID         int64
	Attributes map[string]any
}

// Node is the raw view of a graph node.
type Node struct {
	ID         int64          `json:"id"`
	Labels     []string       `json:"labels"`
	Properties map[string]any `json:"properties"`
}
