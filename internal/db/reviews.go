package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/gocypher"
)

// AddReview stores a standalone Review under a freshly generated id.
// Any id on the input is ignored. The stored review is returned.
func (d *DB) AddReview(ctx context.Context, r Review) (Review, error) {
	r.ID = uuid.NewString()
	query, params, err := gocypher.NewQueryBuilder().
		Create(gocypher.N("n", LabelReview).WithProperties(map[string]interface{}{
			"id":      r.ID,
			"rating":  r.Rating,
			"comment": r.Comment,
		})).
		Build()
	if err != nil {
		return Review{}, err
	}
	err = d.withSession(ctx, neo4j.AccessModeWrite, func(s neo4j.SessionWithContext) error {
		return exec(ctx, s, query, params)
	})
	if err != nil {
		return Review{}, err
	}
	return r, nil
}

// GiveReview links a User to a Review with a GIVES edge.
// Nothing happens when either identifier is missing.
func (d *DB) GiveReview(ctx context.Context, userID, reviewID int64) error {
	return d.withSession(ctx, neo4j.AccessModeWrite, func(s neo4j.SessionWithContext) error {
		return exec(ctx, s, `MATCH (u:User) WHERE id(u) = $userId
MATCH (r:Review) WHERE id(r) = $reviewId
CREATE (u)-[:GIVES]->(r)`, map[string]any{"userId": userID, "reviewId": reviewID})
	})
}

// AllReviews returns every Review with its identifier alongside its attributes.
func (d *DB) AllReviews(ctx context.Context) ([]Entry, error) {
	return d.listEntries(ctx, LabelReview, reviewAttributes)
}

// RemoveReview deletes the Review and its relationships, or returns ErrNotFound.
func (d *DB) RemoveReview(ctx context.Context, id int64) error {
	return d.removeChecked(ctx, LabelReview, id)
}

// UpdateReview overwrites rating and comment of an existing Review.
func (d *DB) UpdateReview(ctx context.Context, id int64, rating int, comment string) error {
	return d.updateChecked(ctx, LabelReview, id, "n.rating = $rating, n.comment = $comment",
		map[string]any{"rating": rating, "comment": comment})
}
