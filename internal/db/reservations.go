package db

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const addReservationQuery = `MATCH (u:User) WHERE id(u) = $userId
CREATE (r:Reservation {reservationDate: $reservationDate, duration: $duration})
CREATE (u)-[:MAKES]->(r)`

// AddReservation creates a Reservation and its MAKES edge in one statement.
// When userID matches no User nothing is created and no error is returned.
func (d *DB) AddReservation(ctx context.Context, userID int64, r Reservation) error {
	return d.withSession(ctx, neo4j.AccessModeWrite, func(s neo4j.SessionWithContext) error {
		return exec(ctx, s, addReservationQuery, map[string]any{
			"userId":          userID,
			"reservationDate": r.ReservationDate,
			"duration":        r.Duration,
		})
	})
}

// AllReservations returns the raw node view of every Reservation.
func (d *DB) AllReservations(ctx context.Context) ([]Node, error) {
	query, params, err := listQuery(LabelReservation)
	if err != nil {
		return nil, err
	}
	var out []Node
	err = d.withSession(ctx, neo4j.AccessModeRead, func(s neo4j.SessionWithContext) error {
		rows, err := readAll(ctx, s, query, params)
		if err != nil {
			return err
		}
		out, err = nodesFromRecords(rows)
		return err
	})
	return out, err
}

// RemoveReservation deletes the Reservation and its relationships.
// A missing identifier is not an error.
func (d *DB) RemoveReservation(ctx context.Context, id int64) error {
	return d.withSession(ctx, neo4j.AccessModeWrite, func(s neo4j.SessionWithContext) error {
		return detachDelete(ctx, s, LabelReservation, id)
	})
}

// UpdateReservation overwrites both attributes. A missing identifier is not an error.
func (d *DB) UpdateReservation(ctx context.Context, id int64, duration int, date time.Time) error {
	return d.withSession(ctx, neo4j.AccessModeWrite, func(s neo4j.SessionWithContext) error {
		return exec(ctx, s, `MATCH (n:Reservation) WHERE id(n) = $id
SET n.duration = $duration, n.reservationDate = $reservationDate`, map[string]any{
			"id":              id,
			"duration":        duration,
			"reservationDate": date,
		})
	})
}
